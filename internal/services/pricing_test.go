package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"translation-office/pkg/constants"
)

func TestRateForUrgency(t *testing.T) {
	assert.Equal(t, RateStandard, RateForUrgency(constants.UrgencyStandard))
	assert.Equal(t, RateNextDay, RateForUrgency(constants.UrgencyNextDay))
	assert.Equal(t, RateSameDay, RateForUrgency(constants.UrgencySameDay))

	// Unknown tiers price at the standard rate instead of failing.
	assert.Equal(t, RateStandard, RateForUrgency("OVERNIGHT"))
	assert.Equal(t, RateStandard, RateForUrgency(""))
}

func TestCalculateQuote(t *testing.T) {
	testCases := []struct {
		name     string
		pages    string
		urgency  string
		hardCopy bool
		expected float64
	}{
		{"three pages standard", "3", constants.UrgencyStandard, false, 1050},
		{"three pages same day", "3", constants.UrgencySameDay, false, 1650},
		{"three pages same day with hard copy", "3", constants.UrgencySameDay, true, 1700},
		{"one page next day", "1", constants.UrgencyNextDay, false, 450},
		{"hard copy fee is flat", "10", constants.UrgencyStandard, true, 3550},
		{"zero pages", "0", constants.UrgencyStandard, false, 0},
		{"negative pages", "-2", constants.UrgencyStandard, false, 0},
		{"non numeric pages", "abc", constants.UrgencySameDay, true, 0},
		{"empty pages", "", constants.UrgencyStandard, false, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateQuote(tc.pages, tc.urgency, tc.hardCopy))
		})
	}
}

func TestCalculateQuoteIsPure(t *testing.T) {
	first := CalculateQuote("5", constants.UrgencyNextDay, true)
	second := CalculateQuote("5", constants.UrgencyNextDay, true)
	assert.Equal(t, first, second)
	assert.Equal(t, 2300.0, first)
}
