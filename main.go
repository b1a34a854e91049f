package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellingbee/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("spellingbee exited")
	}
}
