package util

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds runtime settings, populated from the environment and
// overridable by flags.
type Config struct {
	DSN        string `env:"DATABASE_URL"`
	SeedText   string `env:"STRANDED_SEED"`
	Backend    string `env:"STRANDED_BACKEND" envDefault:"file"` // file|postgres|memory
	LedgerPath string `env:"STRANDED_LEDGER"`
	Player     string `env:"STRANDED_PLAYER" envDefault:"default"`
	Theme      string `env:"STRANDED_THEME" envDefault:"forest"`
}

// FromEnv parses configuration from process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env config")
	}
	return cfg, nil
}
