package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/spellingbee/internal/config"
	"github.com/robalobadob/spellingbee/internal/logger"
)

const version = "0.1.0"

var (
	logLevel  string
	logPretty bool
)

// rootCmd runs the skill server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "spellingbee",
	Short: "Spelling Bee - voice skill backend",
	Long: `Spelling Bee is the backend for a voice-assistant spelling game.
It serves the skill endpoint over HTTP and can be played locally from a
terminal with the play command.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command. Called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "pretty", false, "human-readable log output; overrides LOG_PRETTY")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("pretty") {
		cfg.LogPretty = logPretty
	}
	logger.Setup(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Out: cmd.ErrOrStderr()})
	return cfg, nil
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}
