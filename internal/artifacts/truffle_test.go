package artifacts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolverAddress(t *testing.T) {
	dir := t.TempDir()
	body := `{"contractName":"AE","networks":{"8888":{"address":"0x2222222222222222222222222222222222222222"}}}`
	if err := os.WriteFile(filepath.Join(dir, "AE.json"), []byte(body), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	r := NewResolver(dir)
	addr, err := r.Address("AE", "8888")
	if err != nil {
		t.Fatalf("address: %v", err)
	}
	if addr != "0x2222222222222222222222222222222222222222" {
		t.Fatalf("address mismatch: %s", addr)
	}

	if _, err := r.Address("AE", "1"); !errors.Is(err, ErrNotDeployed) {
		t.Fatalf("expected ErrNotDeployed, got %v", err)
	}
	if _, err := r.Address("BAT", "8888"); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestResolverDisabled(t *testing.T) {
	r := NewResolver("")
	if r.Enabled() {
		t.Fatalf("empty dir should be disabled")
	}
	if _, err := r.Address("AE", "8888"); err == nil {
		t.Fatalf("expected error when disabled")
	}
}
