package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDeployed means the artifact has no address for the network.
var ErrNotDeployed = errors.New("contract not deployed on network")

type contractArtifact struct {
	ContractName string                     `json:"contractName"`
	Networks     map[string]networkArtifact `json:"networks"`
}

type networkArtifact struct {
	Address string `json:"address"`
}

// Resolver reads contract addresses from Truffle build artifacts.
type Resolver struct {
	dir string
}

func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Enabled reports whether a build directory is configured.
func (r *Resolver) Enabled() bool {
	return r != nil && strings.TrimSpace(r.dir) != ""
}

// Path returns the artifact path for a contract name.
func (r *Resolver) Path(name string) string {
	return filepath.Join(r.dir, name+".json")
}

// Address returns the deployed address of a contract on networkID.
func (r *Resolver) Address(name, networkID string) (string, error) {
	if !r.Enabled() {
		return "", fmt.Errorf("artifacts dir is not configured")
	}

	data, err := os.ReadFile(r.Path(name))
	if err != nil {
		return "", fmt.Errorf("read artifact %s: %w", name, err)
	}

	var artifact contractArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return "", fmt.Errorf("parse artifact %s: %w", name, err)
	}

	deployed, ok := artifact.Networks[networkID]
	if !ok || deployed.Address == "" {
		return "", fmt.Errorf("%s on %s: %w", name, networkID, ErrNotDeployed)
	}
	return deployed.Address, nil
}
