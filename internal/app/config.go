package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Args      []string // positional values, verbatim
	SeedFile  string   // replaces Args when set
	OutputDir string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in the default output directory.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SeedFile != "" && len(cfg.Args) > 0 {
		return nil, errors.New("a seed file and positional values cannot be used together")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return &cfg, nil
}
