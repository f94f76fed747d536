package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaietech/revenue-engine/config"
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

func TestDefaultPolicy_Validates(t *testing.T) {
	policy := config.DefaultPolicy()
	require.NoError(t, policy.Validate())
}

func TestTaxYearPolicy_Validate_Brackets(t *testing.T) {
	tests := []struct {
		name     string
		brackets []business.TaxBracket
		wantErr  string
	}{
		{
			name: "final bracket must be unbounded",
			brackets: []business.TaxBracket{
				{LowerBound: 0, UpperBound: 2400000, Rate: 0.25},
			},
			wantErr: "unbounded",
		},
		{
			name: "unbounded bracket only allowed last",
			brackets: []business.TaxBracket{
				{LowerBound: 0, UpperBound: -1, Rate: 0.25},
				{LowerBound: 2400000, UpperBound: -1, Rate: 0.35},
			},
			wantErr: "not the final bracket",
		},
		{
			name: "bounds must be contiguous",
			brackets: []business.TaxBracket{
				{LowerBound: 0, UpperBound: 2400000, Rate: 0.25},
				{LowerBound: 3000000, UpperBound: -1, Rate: 0.35},
			},
			wantErr: "does not meet",
		},
		{
			name: "upper bound above lower bound",
			brackets: []business.TaxBracket{
				{LowerBound: 2400000, UpperBound: 2400000, Rate: 0.25},
				{LowerBound: 2400000, UpperBound: -1, Rate: 0.35},
			},
			wantErr: "not above lower bound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := config.DefaultPolicy()
			policy.PAYE.AnnualBrackets = tt.brackets

			err := policy.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTaxYearPolicy_Validate_Requirements(t *testing.T) {
	t.Run("monthly requirement needs a due day", func(t *testing.T) {
		policy := config.DefaultPolicy()
		policy.Compliance.Requirements[0].DueDay = 0

		err := policy.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "due day")
	})

	t.Run("monthly due day past 28 rejected", func(t *testing.T) {
		policy := config.DefaultPolicy()
		policy.Compliance.Requirements[0].DueDay = 29

		err := policy.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 28")
	})

	t.Run("annual due day past 28 accepted", func(t *testing.T) {
		// The shipped bundle's annual corporate filing is due on day 30.
		policy := config.DefaultPolicy()
		req, err := policy.Compliance.RequirementByID("corp-annual")
		require.NoError(t, err)
		assert.Equal(t, 30, req.DueDay)
		require.NoError(t, policy.Validate())
	})

	t.Run("annual requirement needs a month offset", func(t *testing.T) {
		policy := config.DefaultPolicy()
		for i := range policy.Compliance.Requirements {
			if policy.Compliance.Requirements[i].Frequency == constants.FrequencyAnnual {
				policy.Compliance.Requirements[i].DueMonthOffset = 0
			}
		}

		err := policy.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "due month offset")
	})

	t.Run("unknown tax type rejected", func(t *testing.T) {
		policy := config.DefaultPolicy()
		policy.Compliance.Requirements[0].TaxType = constants.TaxType("stamp_duty")

		err := policy.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tax type")
	})
}

func TestTaxYearPolicy_Validate_UnknownEnums(t *testing.T) {
	t.Run("corporate rate category", func(t *testing.T) {
		policy := config.DefaultPolicy()
		policy.Corporate.Rates[constants.BusinessCategory("agriculture")] = 0.10

		err := policy.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown business category")
	})

	t.Run("withholding payment type", func(t *testing.T) {
		policy := config.DefaultPolicy()
		policy.Withholding.Rates = append(policy.Withholding.Rates,
			config.WithholdingRate{PaymentType: constants.PaymentType("lottery"), Rate: 0.10})

		err := policy.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown payment type")
	})
}

func TestCorporatePolicy_RateFor(t *testing.T) {
	policy := config.DefaultPolicy()

	rate, small, err := policy.Corporate.RateFor(constants.CategoryCommercial, 84000000)
	require.NoError(t, err)
	assert.Equal(t, 0.40, rate)
	assert.False(t, small)

	rate, small, err = policy.Corporate.RateFor(constants.CategoryCommercial, 30000000)
	require.NoError(t, err)
	assert.Equal(t, 0.20, rate)
	assert.True(t, small)

	_, _, err = policy.Corporate.RateFor(constants.BusinessCategory("agriculture"), 1000000)
	assert.Error(t, err)
}

func TestWithholdingPolicy_Lookups(t *testing.T) {
	policy := config.DefaultPolicy()

	rate, err := policy.Withholding.BaseRateFor(constants.PaymentTypeRoyalty)
	require.NoError(t, err)
	assert.Equal(t, 0.15, rate)

	_, err = policy.Withholding.BaseRateFor(constants.PaymentType("lottery"))
	assert.Error(t, err)

	assert.Equal(t, 0.05, policy.Withholding.TreatyReductionFor("CA", constants.PaymentTypeDividend))
	assert.Equal(t, 0.0, policy.Withholding.TreatyReductionFor("CA", constants.PaymentTypeRent))
	assert.Equal(t, 0.0, policy.Withholding.TreatyReductionFor("FR", constants.PaymentTypeDividend))
}

func TestCompliancePolicy_RequirementByID(t *testing.T) {
	policy := config.DefaultPolicy()

	req, err := policy.Compliance.RequirementByID("vat-monthly")
	require.NoError(t, err)
	assert.Equal(t, constants.TaxTypeVAT, req.TaxType)

	_, err = policy.Compliance.RequirementByID("no-such-id")
	assert.Error(t, err)
}
