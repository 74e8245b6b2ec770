package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-driven runtime configuration.
type Config struct {
	// DBPath overrides the default save database location.
	DBPath string `env:"GAMELIFE_DB"`

	AutosaveInterval  time.Duration `env:"GAMELIFE_AUTOSAVE_INTERVAL" envDefault:"3m"`
	ClockTickInterval time.Duration `env:"GAMELIFE_CLOCK_TICK" envDefault:"1m"`

	// Quiet hours suppress digest notifications, local time.
	QuietHoursStart int `env:"GAMELIFE_QUIET_START" envDefault:"0"`
	QuietHoursEnd   int `env:"GAMELIFE_QUIET_END" envDefault:"8"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
