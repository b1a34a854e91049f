package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/spellingbee/internal/httpserver"
	"github.com/robalobadob/spellingbee/internal/metrics"
	"github.com/robalobadob/spellingbee/internal/skill"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the skill endpoint over HTTP",
	Long: `Serve POST /skill for the voice platform, plus /health and /metrics.
Configuration is read from the environment and an optional .env file.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := metrics.NewMetrics()
	a, err := buildApp(cfg, m)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(); err != nil {
			log.Warn().Err(err).Msg("close lexicon cache")
		}
	}()

	h := skill.NewHandler(a.dispatcher, cfg.SkillApplicationID, m)
	srv := httpserver.New(h, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		JWTSecret:    cfg.SkillJWTSecret,
		Metrics:      m.Handler(),
		WordStats:    a.list.Stats,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Bool("auth", cfg.SkillJWTSecret != "").Msg("starting spellingbee server")
	return srv.Run(ctx, cfg.Addr())
}
