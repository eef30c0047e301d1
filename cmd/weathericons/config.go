package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds the settings read from the environment. Command line flags take precedence.
type config struct {
	Root      string `env:"WEATHERICONS_ROOT" envDefault:"."`
	Backend   string `env:"WEATHERICONS_BACKEND" envDefault:"auto"`
	Converter string `env:"WEATHERICONS_CONVERTER" envDefault:"rsvg-convert"`
	Workers   int    `env:"WEATHERICONS_WORKERS" envDefault:"1"`
	NoColor   string `env:"NO_COLOR"`
}

// loadConfig parses the environment into a config. A nil environ reads the process environment.
func loadConfig(environ map[string]string) (config, error) {
	var (
		cfg config
		err error
	)
	if environ == nil {
		err = env.Parse(&cfg)
	} else {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: environ})
	}
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
