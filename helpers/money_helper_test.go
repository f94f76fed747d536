package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaietech/revenue-engine/helpers"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"already two places", 123.45, 123.45},
		{"rounds half up", 2.345, 2.35},
		{"rounds down", 2.344, 2.34},
		{"float noise collapses", 14000.000000000002, 14000},
		{"float noise below", 5599.999999999999, 5600},
		{"negative rounds away from zero", -2.345, -2.35},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, helpers.RoundMoney(tt.value))
		})
	}
}

func TestRoundRate(t *testing.T) {
	assert.Equal(t, 0.056, helpers.RoundRate(0.056))
	assert.Equal(t, 0.0562, helpers.RoundRate(0.05615))
	assert.Equal(t, 0.1234, helpers.RoundRate(0.123449))
	assert.Equal(t, 0.0, helpers.RoundRate(0))
}

func TestClampNonNegative(t *testing.T) {
	assert.Equal(t, 0.0, helpers.ClampNonNegative(-100))
	assert.Equal(t, 0.0, helpers.ClampNonNegative(0))
	assert.Equal(t, 42.5, helpers.ClampNonNegative(42.5))
}
