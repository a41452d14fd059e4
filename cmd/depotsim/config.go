package main

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

type Config struct {
	Entities    int    `config:"DEPOT_ENTITIES"`
	Ticks       int    `config:"DEPOT_TICKS"`
	MoverRatio  int    `config:"DEPOT_MOVER_RATIO"`
	LogLevel    string `config:"DEPOT_LOG_LEVEL"`
	Profile     string `config:"DEPOT_PROFILE"`
	ProfilePath string `config:"DEPOT_PROFILE_PATH"`
}

func defaultConfig() Config {
	return Config{
		Entities:    10000,
		Ticks:       100,
		MoverRatio:  4,
		LogLevel:    "info",
		ProfilePath: ".",
	}
}

// LoadConfig overlays DEPOT_* environment variables on the defaults
func LoadConfig() (Config, error) {
	cfg := defaultConfig()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to read environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Entities < 0 {
		return eris.Errorf("DEPOT_ENTITIES must not be negative, got %d", c.Entities)
	}
	if c.Ticks < 0 {
		return eris.Errorf("DEPOT_TICKS must not be negative, got %d", c.Ticks)
	}
	if c.MoverRatio < 1 {
		return eris.Errorf("DEPOT_MOVER_RATIO must be at least 1, got %d", c.MoverRatio)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return eris.Errorf("DEPOT_PROFILE must be cpu or mem, got %q", c.Profile)
	}
	return nil
}
