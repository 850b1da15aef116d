package main

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-dependent/logger"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type config struct {
	Catalog     string `env:"DEPCHECK_CATALOG,required,notEmpty"`
	Kind        string `env:"DEPCHECK_KIND"`
	Workers     int    `env:"DEPCHECK_WORKERS"     envDefault:"4"`
	Interactive bool   `env:"DEPCHECK_INTERACTIVE"`
	MetricsFile string `env:"DEPCHECK_METRICS_FILE"`
	LogJSON     bool   `env:"LOG_JSON"`
	LogLevel    string `env:"LOG_LEVEL"            envDefault:"info"`
}

// loadConfig reads the process environment, after merging in a .env file from
// the working directory when one exists. Variables already set win over the file.
func loadConfig() (config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.Workers < 1 {
		return config{}, fmt.Errorf("DEPCHECK_WORKERS must be positive, got %d", cfg.Workers)
	}

	return cfg, nil
}

func (c config) level() (slog.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}
