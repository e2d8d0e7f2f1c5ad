package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexseed/internal/artifacts"
	"dexseed/internal/chain"
	"dexseed/internal/config"
	"dexseed/internal/seed"
	"dexseed/internal/storage"
)

func runTokens(cmd *cobra.Command, _ []string) error {
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

	if cfg.DBURL == "" && !cfg.DryRun {
		return logFailure(logger, "seed tokens failed", seed.Wrap(seed.KindConfig, "seed tokens", fmt.Errorf("db url is required")))
	}
	if cfg.VerifyDecimals && cfg.RPCURL == "" {
		return logFailure(logger, "seed tokens failed", seed.Wrap(seed.KindConfig, "seed tokens", fmt.Errorf("rpc url is required to verify decimals")))
	}

	network, err := cfg.ActiveNetwork()
	if err != nil {
		return logFailure(logger, "seed tokens failed", seed.Wrap(seed.KindConfig, "seed tokens", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var verifier seed.DecimalsSource
	if cfg.VerifyDecimals {
		chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
		if err != nil {
			return logFailure(logger, "seed tokens failed", seed.Wrap(seed.KindConnect, "connect rpc", err))
		}
		defer chainClient.Close()

		chainID, err := chainClient.GetChainID(ctx)
		if err != nil {
			return logFailure(logger, "seed tokens failed", seed.Wrap(seed.KindConnect, "get chain id", err))
		}
		if chainID.String() != network.ID {
			logger.Warn("rpc chain id differs from network id", zap.String("chain_id", chainID.String()), zap.String("network_id", network.ID))
		}
		verifier = chainClient
	}

	logger.Info("token seed start",
		zap.String("db_url", redactDSN(cfg.DBURL)),
		zap.String("db_name", cfg.DBName),
		zap.String("network", network.Name),
		zap.String("network_id", network.ID),
		zap.Int("base_tokens", len(network.BaseTokens)),
		zap.Bool("include_quotes", cfg.IncludeQuotes),
		zap.String("artifacts_dir", cfg.ArtifactsDir),
		zap.Bool("verify_decimals", cfg.VerifyDecimals),
		zap.Bool("dry_run", cfg.DryRun),
	)

	seedCfg := seed.TokenConfig{
		Network:       network,
		IncludeQuotes: cfg.IncludeQuotes,
		DryRun:        cfg.DryRun,
		Dump:          cfg.Dump,
	}
	resolver := artifacts.NewResolver(cfg.ArtifactsDir)

	var store storage.Store
	if !cfg.DryRun {
		opened, release, err := openStore(ctx, cfg.DBURL, cfg.DBName, logger)
		if err != nil {
			return logFailure(logger, "seed tokens failed", err)
		}
		defer release()
		store = opened
	}

	result, err := seed.NewTokenSeeder(seedCfg, store, resolver, verifier, logger).Run(ctx)
	if err != nil {
		return logFailure(logger, "seed tokens failed", err)
	}

	logger.Info("token seed complete", zap.Int("built", result.Built), zap.Int("inserted", result.Inserted))
	return nil
}
