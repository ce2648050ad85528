// Command seeder populates the pronunciation corpus with stress patterns
// from the CMU Pronouncing Dictionary. Pairs already in the corpus keep
// their popularity, so it is safe to run against a corpus with human
// observations.
//
// Flags:
//
//	--cmu               path to the dictionary file (overrides config)
//	--dry-run           parse the dictionary without writing to the corpus
//	--demote-stopwords  store stressed monosyllabic function words as unstressed
//	--config            path to the application YAML config file
//	--seeder-config     path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hathaway2010/poetry-scansion/internal/app"
	"github.com/hathaway2010/poetry-scansion/internal/config"
	"github.com/hathaway2010/poetry-scansion/internal/seeder"
	"github.com/hathaway2010/poetry-scansion/pkg/ctxutil"
)

func main() {
	cmuFlag := flag.String("cmu", "", "path to the CMU dictionary file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dictionary without writing to the corpus")
	demoteFlag := flag.Bool("demote-stopwords", false, "store stressed monosyllabic function words as unstressed")
	configFlag := flag.String("config", "", "path to application YAML config file")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for the corpus connection).
	appCfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *cmuFlag != "" {
		seederCfg.CMUPath = *cmuFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *demoteFlag {
		seederCfg.DemoteStopwords = true
	}
	if err := seederCfg.Validate(); err != nil {
		logger.Error("invalid seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(ctxutil.WithNewRunID(context.Background()), 30*time.Minute)
	defer cancel()

	corpus, err := app.OpenCorpus(ctx, appCfg, logger)
	if err != nil {
		logger.Error("open corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer corpus.Close()

	pipeline := seeder.NewPipeline(logger, corpus.Pronunciations, *seederCfg)
	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		corpus.Close()
		os.Exit(1)
	}

	logger.Info("seeding completed successfully",
		slog.String("driver", corpus.Driver),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Bool("dry_run", seederCfg.DryRun),
	)
}
