package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexseed/internal/config"
	"dexseed/internal/seed"
)

func runPairs(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.DBURL == "" {
		return logFailure(logger, "seed pairs failed", seed.Wrap(seed.KindConfig, "seed pairs", fmt.Errorf("db url is required")))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("pair seed start",
		zap.String("db_url", redactDSN(cfg.DBURL)),
		zap.String("db_name", cfg.DBName),
		zap.Bool("dry_run", cfg.DryRun),
		zap.String("dump", cfg.Dump),
	)

	store, release, err := openStore(ctx, cfg.DBURL, cfg.DBName, logger)
	if err != nil {
		return logFailure(logger, "seed pairs failed", err)
	}
	defer release()

	seeder := seed.NewPairSeeder(seed.PairConfig{
		DryRun: cfg.DryRun,
		Dump:   cfg.Dump,
	}, store, logger)

	result, err := seeder.Run(ctx)
	if err != nil {
		return logFailure(logger, "seed pairs failed", err)
	}

	logger.Info("pair seed complete", zap.Int("built", result.Built), zap.Int("inserted", result.Inserted))
	return nil
}
