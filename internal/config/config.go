// internal/config/config.go
//
// Process configuration, read from the environment (and an optional .env).

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server and the REPL need.
type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty    bool   `env:"LOG_PRETTY" envDefault:"false"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	// Word provider. WordAPIURL empty means bundled list only.
	WordAPIURL         string `env:"WORD_API_URL"`
	WordAPILengthParam string `env:"WORD_API_LENGTH_PARAM" envDefault:"length"`
	WordsFile          string `env:"WORDS_FILE"`

	// Lexicon provider. WordnikAPIKey empty disables definitions/examples.
	WordnikAPIURL string `env:"WORDNIK_API_URL" envDefault:"https://api.wordnik.com/v4"`
	WordnikAPIKey string `env:"WORDNIK_API_KEY"`

	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"5s"`

	// DBPath empty keeps the lexicon cache in memory.
	DBPath string `env:"DB_PATH"`

	SkillApplicationID string `env:"SKILL_APPLICATION_ID"`
	SkillJWTSecret     string `env:"SKILL_JWT_SECRET"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ProviderTimeout <= 0 {
		return Config{}, fmt.Errorf("parse env: PROVIDER_TIMEOUT must be positive, got %s", cfg.ProviderTimeout)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }
