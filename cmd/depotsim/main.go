// depotsim drives a depot world through a fixed number of ticks. It is the
// quickest way to profile the storage layer:
//
//	DEPOT_PROFILE=cpu go run ./cmd/depotsim
//	go tool pprof -http=":8000" cpu.pprof
package main

import (
	"os"

	"github.com/TheBitDrifter/depot"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal().Str("error", eris.ToString(err, true)).Msg("invalid configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid log level")
	}
	logger = logger.Level(level)
	depot.Config.SetLogger(logger.With().Str("module", "depot").Logger())
	depot.Config.SetInitialCapacity(cfg.Entities)

	if p := startProfile(cfg); p != nil {
		defer p.Stop()
	}

	sim := newSimulation(logger)
	if err := sim.seed(cfg.Entities, cfg.MoverRatio); err != nil {
		logger.Fatal().Str("error", eris.ToString(err, true)).Msg("failed to seed world")
	}
	stats := sim.run(cfg.Ticks)

	logger.Info().
		Int("entities", stats.Entities).
		Int("columns", stats.Columns).
		Int("movers", stats.Movers).
		Int("alive", stats.Alive).
		Float64("distance", stats.Distance).
		Int("ticks", cfg.Ticks).
		Msg("simulation finished")
}

func startProfile(cfg Config) interface{ Stop() } {
	switch cfg.Profile {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath(cfg.ProfilePath), profile.NoShutdownHook)
	}
	return nil
}
