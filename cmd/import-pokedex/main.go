// Package main imports pokedex content into PostgreSQL or a YAML directory.
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
	"github.com/cory-johannsen/pkmn/internal/importer"
	"github.com/cory-johannsen/pkmn/internal/importer/csvsrc"
	"github.com/cory-johannsen/pkmn/internal/observability"
	"github.com/cory-johannsen/pkmn/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	format := flag.String("format", "yaml", "source format: yaml or csv")
	sourceDir := flag.String("source", "", "source directory; defaults to pokedex.content_dir")
	outputDir := flag.String("output", "", "write YAML content here instead of the database")
	flag.Parse()

	start := time.Now()
	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging, "import-pokedex")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var src importer.Source
	switch *format {
	case "yaml":
		src = importer.YAMLSource{}
	case "csv":
		src = csvsrc.NewSource()
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (supported: yaml, csv)\n", *format)
		os.Exit(1)
	}
	dir := *sourceDir
	if dir == "" {
		dir = cfg.Pokedex.ContentDir
	}

	var sink importer.Sink
	if *outputDir != "" {
		sink, err = importer.NewDirSink(*outputDir)
		if err != nil {
			logger.Fatal("preparing output directory", zap.Error(err))
		}
	} else {
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		sink = postgres.NewPokedexRepository(pool.DB())
	}

	sum, err := importer.New(src, sink, logger).Run(ctx, dir)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err), zap.Int("species_written", sum.Species), zap.Int("moves_written", sum.Moves))
	}
	fmt.Printf("imported %d species and %d moves in %s\n", sum.Species, sum.Moves, time.Since(start).Round(time.Millisecond))
}
