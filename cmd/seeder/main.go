package main

import (
	"context"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dexseed/internal/seed"
	"dexseed/internal/storage"
)

const closeTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:          "seeder",
		Short:        "Seed DEX tokens and pairs",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before config (ignored if missing)")
	root.PersistentFlags().String("db-url", "", "database URL (mongodb:// or postgres://)")
	root.PersistentFlags().String("db-name", "", "database name (mongo)")
	root.PersistentFlags().String("network", "development", "network whose token table is used")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	tokensCmd := &cobra.Command{
		Use:   "tokens",
		Short: "Insert the configured base tokens into the tokens collection",
		RunE:  runTokens,
	}

	tokensCmd.Flags().String("artifacts-dir", "", "contract build artifacts dir (default $TOMO_DEX_PATH/build/contracts)")
	tokensCmd.Flags().String("rpc", "", "RPC URL used to verify token decimals")
	tokensCmd.Flags().Bool("verify-decimals", false, "check configured decimals against ERC20 decimals() (requires --rpc)")
	tokensCmd.Flags().Bool("include-quotes", false, "also insert quote tokens with their fees")
	tokensCmd.Flags().Bool("dry-run", false, "build records without inserting")
	tokensCmd.Flags().String("dump", "", "write built tokens to this JSONL path")

	root.AddCommand(tokensCmd)

	pairsCmd := &cobra.Command{
		Use:   "pairs",
		Short: "Derive pairs from seeded tokens and insert them",
		RunE:  runPairs,
	}

	pairsCmd.Flags().Bool("dry-run", false, "build records without inserting")
	pairsCmd.Flags().String("dump", "", "write built pairs to this JSONL path")

	root.AddCommand(pairsCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// openStore connects to the store and returns a release func that always
// closes it, even when ctx is already cancelled.
func openStore(ctx context.Context, dbURL, dbName string, logger *zap.Logger) (storage.Store, func(), error) {
	store, err := storage.Open(ctx, dbURL, dbName)
	if err != nil {
		return nil, nil, seed.Wrap(seed.KindConnect, "open store", err)
	}

	release := func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("close store", zap.Error(err))
			return
		}
		logger.Debug("store closed")
	}
	return store, release, nil
}

func logFailure(logger *zap.Logger, msg string, err error) error {
	logger.Error(msg, zap.String("kind", string(seed.KindOf(err))), zap.Error(err))
	return err
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Scheme == "" {
		return "***"
	}
	return parsed.Redacted()
}
