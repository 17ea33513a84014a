package payment_usecases

import (
	"errors"
	"math"
)

// FareSplit is the operator/platform division of a collected fare.
// Commission + NetAmount always equals Amount.
type FareSplit struct {
	Amount     int64
	Commission int64
	NetAmount  int64
}

// SplitFare computes the platform commission on a fare at the given rate.
// Pure; rounding happens once, on the commission, so the two parts always
// reassemble to the original amount.
func SplitFare(amount int64, rate float64) (FareSplit, error) {
	if amount < 0 {
		return FareSplit{}, errors.New("amount must not be negative")
	}
	if rate < 0 || rate > 1 {
		return FareSplit{}, errors.New("rate must be within [0, 1]")
	}
	commission := int64(math.Round(float64(amount) * rate))
	return FareSplit{
		Amount:     amount,
		Commission: commission,
		NetAmount:  amount - commission,
	}, nil
}
