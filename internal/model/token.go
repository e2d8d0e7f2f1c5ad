package model

import "time"

// Token is a seeded token record.
type Token struct {
	Symbol          string    `json:"symbol" bson:"symbol"`
	ContractAddress string    `json:"contractAddress" bson:"contractAddress"`
	Decimals        int       `json:"decimals" bson:"decimals"`
	Quote           bool      `json:"quote" bson:"quote"`
	MakeFee         *float64  `json:"makeFee,omitempty" bson:"makeFee,omitempty"`
	TakeFee         *float64  `json:"takeFee,omitempty" bson:"takeFee,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}
