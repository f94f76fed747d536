package helpers_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/helpers"
)

func TestAnnualFactor(t *testing.T) {
	tests := []struct {
		frequency constants.Frequency
		factor    float64
	}{
		{constants.FrequencyWeekly, 52},
		{constants.FrequencyBiWeekly, 26},
		{constants.FrequencyMonthly, 12},
		{constants.FrequencyAnnual, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			factor, err := helpers.AnnualFactor(tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.factor, factor)
		})
	}
}

func TestAnnualFactor_Unknown(t *testing.T) {
	_, err := helpers.AnnualFactor(constants.Frequency("daily"))
	require.Error(t, err)

	var unknownErr *helpers.UnknownFrequencyError
	assert.True(t, errors.As(err, &unknownErr))
	assert.Contains(t, unknownErr.Error(), "daily")
}

func TestConvertAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		from     constants.Frequency
		to       constants.Frequency
		expected float64
	}{
		{"weekly to annual", 1000, constants.FrequencyWeekly, constants.FrequencyAnnual, 52000},
		{"monthly to annual", 130000, constants.FrequencyMonthly, constants.FrequencyAnnual, 1560000},
		{"annual to monthly", 1560000, constants.FrequencyAnnual, constants.FrequencyMonthly, 130000},
		{"bi-weekly to weekly", 2000, constants.FrequencyBiWeekly, constants.FrequencyWeekly, 1000},
		{"same frequency is identity", 123.45, constants.FrequencyMonthly, constants.FrequencyMonthly, 123.45},
		{"zero amount", 0, constants.FrequencyWeekly, constants.FrequencyMonthly, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted, err := helpers.ConvertAmount(tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, converted, 0.0001)
		})
	}
}

func TestConvertAmount_RoundTrip(t *testing.T) {
	amounts := []float64{1, 130000, 9999.99}
	for _, amount := range amounts {
		weekly, err := helpers.ConvertAmount(amount, constants.FrequencyMonthly, constants.FrequencyWeekly)
		require.NoError(t, err)
		back, err := helpers.ConvertAmount(weekly, constants.FrequencyWeekly, constants.FrequencyMonthly)
		require.NoError(t, err)
		assert.InDelta(t, amount, back, 0.0001)
	}
}

func TestConvertAmount_UnknownFrequency(t *testing.T) {
	_, err := helpers.ConvertAmount(100, constants.Frequency("daily"), constants.FrequencyMonthly)
	assert.Error(t, err)

	_, err = helpers.ConvertAmount(100, constants.FrequencyMonthly, constants.Frequency("daily"))
	assert.Error(t, err)

	// Identity conversion still rejects an unknown cadence.
	_, err = helpers.ConvertAmount(100, constants.Frequency("daily"), constants.Frequency("daily"))
	assert.Error(t, err)
}
