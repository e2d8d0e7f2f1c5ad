package model

import "time"

// Pair is a trading pair derived from one base and one quote token.
type Pair struct {
	BaseTokenSymbol    string    `json:"baseTokenSymbol" bson:"baseTokenSymbol"`
	BaseTokenAddress   string    `json:"baseTokenAddress" bson:"baseTokenAddress"`
	BaseTokenDecimals  int       `json:"baseTokenDecimals" bson:"baseTokenDecimals"`
	QuoteTokenSymbol   string    `json:"quoteTokenSymbol" bson:"quoteTokenSymbol"`
	QuoteTokenAddress  string    `json:"quoteTokenAddress" bson:"quoteTokenAddress"`
	QuoteTokenDecimals int       `json:"quoteTokenDecimals" bson:"quoteTokenDecimals"`

	// PriceMultiplier is an exact decimal string, never a float.
	PriceMultiplier string    `json:"priceMultiplier" bson:"priceMultiplier"`
	Active          bool      `json:"active" bson:"active"`
	MakeFee         *float64  `json:"makeFee,omitempty" bson:"makeFee,omitempty"`
	TakeFee         *float64  `json:"takeFee,omitempty" bson:"takeFee,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// Key identifies the pair by its base and quote symbols.
func (p Pair) Key() string {
	return p.BaseTokenSymbol + "/" + p.QuoteTokenSymbol
}
