package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

const sampleConfig = `
db-url: mongodb://localhost:27017
db-name: tomodex
network: development
networks:
  development:
    base-tokens: [AE, BAT, " "]
    quote-tokens: [WETH]
    tokens:
      - symbol: AE
        address: "0x2222222222222222222222222222222222222222"
        decimals: 18
      - symbol: BAT
        decimals: 18
      - symbol: WETH
        address: "0x3333333333333333333333333333333333333333"
        decimals: 18
        make-fee: 0.001
        take-fee: 0.002
  rinkeby:
    id: 1234
    base-tokens: [AE]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadNetworks(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DBURL != "mongodb://localhost:27017" || cfg.DBName != "tomodex" {
		t.Fatalf("db settings mismatch: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level mismatch: %s", cfg.LogLevel)
	}

	network, err := cfg.ActiveNetwork()
	if err != nil {
		t.Fatalf("active network: %v", err)
	}
	if network.Name != "development" || network.ID != "8888" {
		t.Fatalf("network mismatch: %s/%s", network.Name, network.ID)
	}
	if len(network.BaseTokens) != 2 || network.BaseTokens[1] != "BAT" {
		t.Fatalf("base tokens mismatch: %v", network.BaseTokens)
	}

	weth, ok := network.Token("weth")
	if !ok {
		t.Fatalf("weth not found")
	}
	if weth.MakeFee == nil || *weth.MakeFee != 0.001 || weth.TakeFee == nil || *weth.TakeFee != 0.002 {
		t.Fatalf("fees mismatch: %+v", weth)
	}

	bat, _ := network.Token("BAT")
	if bat.Address != "" || bat.MakeFee != nil {
		t.Fatalf("bat should have no address or fees: %+v", bat)
	}
}

func TestLoadExplicitNetworkID(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Network = "rinkeby"

	network, err := cfg.ActiveNetwork()
	if err != nil {
		t.Fatalf("active network: %v", err)
	}
	if network.ID != "1234" {
		t.Fatalf("explicit id should win, got %s", network.ID)
	}
}

func TestActiveNetworkMissing(t *testing.T) {
	cfg := Config{Network: "kovan"}
	if _, err := cfg.ActiveNetwork(); err == nil {
		t.Fatalf("expected error for unconfigured network")
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db-url", "", "")
	flags.Bool("dry-run", false, "")
	flags.String("env-file", "", "")
	if err := flags.Parse([]string{"--db-url=postgres://localhost/seed", "--dry-run"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(writeConfig(t, sampleConfig), flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBURL != "postgres://localhost/seed" {
		t.Fatalf("flag should override file: %s", cfg.DBURL)
	}
	if !cfg.DryRun {
		t.Fatalf("dry-run should be set")
	}
}

func TestLoadEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "seed.env")
	if err := os.WriteFile(envPath, []byte("SEEDER_DB_NAME=fromenvfile\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("SEEDER_DB_NAME") })

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("env-file", envPath, "")

	cfg, err := Load(writeConfig(t, "network: development\n"), flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBName != "fromenvfile" {
		t.Fatalf("env file value not applied: %q", cfg.DBName)
	}
}

func TestDefaultArtifactsDir(t *testing.T) {
	t.Setenv(ArtifactsEnv, "/opt/dex")
	if got := DefaultArtifactsDir(); got != filepath.Join("/opt/dex", "build", "contracts") {
		t.Fatalf("artifacts dir mismatch: %s", got)
	}

	t.Setenv(ArtifactsEnv, "")
	if got := DefaultArtifactsDir(); got != "" {
		t.Fatalf("expected empty artifacts dir, got %s", got)
	}
}

func TestNetworkID(t *testing.T) {
	cases := map[string]string{
		"mainnet":     "1",
		"Development": "8888",
		"77":          "77",
	}
	for name, want := range cases {
		got, err := NetworkID(name)
		if err != nil {
			t.Fatalf("network id %s: %v", name, err)
		}
		if got != want {
			t.Fatalf("network id %s: got %s want %s", name, got, want)
		}
	}
	if _, err := NetworkID("nowhere"); err == nil {
		t.Fatalf("expected error for unknown network")
	}
}
