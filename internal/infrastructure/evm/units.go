package evm

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToAmount converts a raw balance in the smallest unit into whole units.
func ToAmount(raw *big.Int, decimals uint8) float64 {
	if raw == nil {
		return 0
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)).InexactFloat64()
}
