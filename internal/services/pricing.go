package services

import (
	"strconv"

	"translation-office/pkg/constants"
)

// Per-page rates by delivery tier, in the base currency unit.
const (
	RateStandard = 350.0
	RateNextDay  = 450.0
	RateSameDay  = 550.0

	// Flat fee for a printed hard copy, independent of page count.
	HardCopyFee = 50.0
)

// RateForUrgency returns the per-page rate for a delivery tier. Unknown
// tiers fall back to the standard rate.
func RateForUrgency(urgency string) float64 {
	switch urgency {
	case constants.UrgencySameDay:
		return RateSameDay
	case constants.UrgencyNextDay:
		return RateNextDay
	default:
		return RateStandard
	}
}

// CalculateQuote computes the estimated price for a request. numberOfPages
// arrives as numeric text; anything that does not parse to a positive
// integer prices at 0 rather than erroring, so callers never see NaN or a
// failure from a malformed form value.
func CalculateQuote(numberOfPages string, urgency string, hardCopy bool) float64 {
	pages, err := strconv.Atoi(numberOfPages)
	if err != nil || pages <= 0 {
		return 0
	}

	total := float64(pages) * RateForUrgency(urgency)
	if hardCopy {
		total += HardCopyFee
	}
	return total
}
