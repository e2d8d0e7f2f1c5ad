package config

import (
	"fmt"
	"strconv"
	"strings"
)

var networkIDs = map[string]string{
	"mainnet":          "1",
	"ropsten":          "3",
	"rinkeby":          "4",
	"kovan":            "42",
	"tomochain":        "88",
	"tomochaintestnet": "89",
	"development":      "8888",
}

// TokenSpec is one row of a network's token table.
type TokenSpec struct {
	Symbol   string   `mapstructure:"symbol"`
	Address  string   `mapstructure:"address"`
	Decimals int      `mapstructure:"decimals"`
	MakeFee  *float64 `mapstructure:"make-fee"`
	TakeFee  *float64 `mapstructure:"take-fee"`
}

// Network is the static token configuration of one chain.
type Network struct {
	Name        string      `mapstructure:"-"`
	ID          string      `mapstructure:"id"`
	BaseTokens  []string    `mapstructure:"base-tokens"`
	QuoteTokens []string    `mapstructure:"quote-tokens"`
	Tokens      []TokenSpec `mapstructure:"tokens"`
}

// Token looks up a symbol, ignoring case.
func (n Network) Token(symbol string) (TokenSpec, bool) {
	symbol = strings.TrimSpace(symbol)
	for _, spec := range n.Tokens {
		if strings.EqualFold(strings.TrimSpace(spec.Symbol), symbol) {
			return spec, true
		}
	}
	return TokenSpec{}, false
}

// NetworkID maps a network name to its numeric id. Numeric names pass through.
func NetworkID(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if id, ok := networkIDs[name]; ok {
		return id, nil
	}
	if _, err := strconv.ParseUint(name, 10, 64); err == nil {
		return name, nil
	}
	return "", fmt.Errorf("unknown network: %s", name)
}
