package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ArtifactsEnv names the variable pointing at the contracts checkout.
const ArtifactsEnv = "TOMO_DEX_PATH"

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	DBURL          string
	DBName         string
	Network        string
	Networks       map[string]Network
	ArtifactsDir   string
	RPCURL         string
	VerifyDecimals bool
	IncludeQuotes  bool
	DryRun         bool
	Dump           string
	LogLevel       string
}

// Load merges .env, config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	if err := loadEnvFile(flags); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("SEEDER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("network", "development")
	v.SetDefault("log-level", "info")
	v.SetDefault("include-quotes", false)
	v.SetDefault("verify-decimals", false)
	v.SetDefault("dry-run", false)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	networks := make(map[string]Network)
	if v.IsSet("networks") {
		if err := v.UnmarshalKey("networks", &networks); err != nil {
			return Config{}, fmt.Errorf("parse networks: %w", err)
		}
	}

	cfg := Config{
		DBURL:          v.GetString("db-url"),
		DBName:         v.GetString("db-name"),
		Network:        strings.ToLower(strings.TrimSpace(v.GetString("network"))),
		Networks:       networks,
		ArtifactsDir:   v.GetString("artifacts-dir"),
		RPCURL:         v.GetString("rpc"),
		VerifyDecimals: v.GetBool("verify-decimals"),
		IncludeQuotes:  v.GetBool("include-quotes"),
		DryRun:         v.GetBool("dry-run"),
		Dump:           v.GetString("dump"),
		LogLevel:       v.GetString("log-level"),
	}

	if cfg.ArtifactsDir == "" {
		cfg.ArtifactsDir = DefaultArtifactsDir()
	}

	return cfg, nil
}

// DefaultArtifactsDir returns $TOMO_DEX_PATH/build/contracts, or "" when unset.
func DefaultArtifactsDir() string {
	root := strings.TrimSpace(os.Getenv(ArtifactsEnv))
	if root == "" {
		return ""
	}
	return filepath.Join(root, "build", "contracts")
}

// ActiveNetwork resolves the selected network table.
func (c Config) ActiveNetwork() (Network, error) {
	if c.Network == "" {
		return Network{}, fmt.Errorf("network is required")
	}
	network, ok := c.Networks[c.Network]
	if !ok {
		return Network{}, fmt.Errorf("network %q is not configured", c.Network)
	}
	network.Name = c.Network
	if strings.TrimSpace(network.ID) == "" {
		id, err := NetworkID(c.Network)
		if err != nil {
			return Network{}, err
		}
		network.ID = id
	}
	network.BaseTokens = cleanStrings(network.BaseTokens)
	network.QuoteTokens = cleanStrings(network.QuoteTokens)
	return network, nil
}

func loadEnvFile(flags *pflag.FlagSet) error {
	path := ".env"
	if flags != nil {
		if f := flags.Lookup("env-file"); f != nil {
			path = f.Value.String()
		}
	}
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
