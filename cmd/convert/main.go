// Package main provides a developer tool that converts a record file to
// another game and prints the result with its conversion report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/pkmn/internal/config"
	"github.com/cory-johannsen/pkmn/internal/game/convert"
	"github.com/cory-johannsen/pkmn/internal/game/generation"
	"github.com/cory-johannsen/pkmn/internal/game/personality"
	"github.com/cory-johannsen/pkmn/internal/game/pokedex"
	"github.com/cory-johannsen/pkmn/internal/game/rng"
	"github.com/cory-johannsen/pkmn/internal/observability"
	"github.com/cory-johannsen/pkmn/internal/recordfile"
	"github.com/cory-johannsen/pkmn/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	inPath := flag.String("in", "", "path to the record YAML file")
	gameName := flag.String("game", "", "destination game, e.g. Emerald")
	seed := flag.Uint64("seed", 0, "seed for personality synthesis; 0 = crypto source")
	flag.Parse()

	if *inPath == "" || *gameName == "" {
		fmt.Fprintln(os.Stderr, "usage: convert -in <record.yaml> -game <game> [-config <file>] [-seed <n>]")
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "convert")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	dest, err := generation.ParseGame(*gameName)
	if err != nil {
		logger.Fatal("parsing destination game", zap.Error(err))
	}

	rec, err := recordfile.ReadFile(*inPath)
	if err != nil {
		logger.Fatal("reading record", zap.Error(err))
	}

	db, closeDB, err := openPokedex(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("opening pokedex", zap.Error(err))
	}
	defer closeDB()

	var src rng.Source = rng.NewCryptoSource()
	if *seed != 0 {
		src = rng.NewSeededSource(*seed)
	}

	conv := convert.NewConverter(db, personality.NewGenerator(logger, cfg.Personality.MaxAttempts), logger)
	out, report, err := conv.Convert(rec, dest, src)
	if err != nil {
		logger.Fatal("converting record", zap.Error(err))
	}

	if err := recordfile.Encode(os.Stdout, out, &report); err != nil {
		logger.Fatal("writing output", zap.Error(err))
	}
}

// openPokedex loads the species and move database named by cfg.Pokedex.
// A PostgreSQL-backed pokedex is read once into memory.
func openPokedex(ctx context.Context, cfg config.Config, logger *zap.Logger) (pokedex.Database, func(), error) {
	start := time.Now()
	switch cfg.Pokedex.Source {
	case config.PokedexSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		db, err := postgres.NewPokedexRepository(pool.DB()).Load(ctx)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("pokedex loaded",
			zap.String("source", cfg.Pokedex.Source),
			zap.Int("species", len(db.AllSpecies())),
			zap.Duration("elapsed", time.Since(start)),
		)
		return db, pool.Close, nil
	default:
		db, err := pokedex.LoadDirectory(cfg.Pokedex.ContentDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("pokedex loaded",
			zap.String("source", cfg.Pokedex.Source),
			zap.String("dir", cfg.Pokedex.ContentDir),
			zap.Int("species", len(db.AllSpecies())),
			zap.Duration("elapsed", time.Since(start)),
		)
		return db, func() {}, nil
	}
}
