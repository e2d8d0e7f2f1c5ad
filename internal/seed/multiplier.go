package seed

import "github.com/shopspring/decimal"

// PriceMultiplier returns 10^(quoteDecimals-baseDecimals) as an exact decimal string.
func PriceMultiplier(baseDecimals, quoteDecimals int) string {
	return decimal.New(1, int32(quoteDecimals-baseDecimals)).String()
}
