package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/services"
	"github.com/kaietech/revenue-engine/testutil"
	"github.com/kaietech/revenue-engine/types/api/params"
)

func TestCorporateTaxService_Calculate_ReliefOrderAndCaps(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	result, err := service.Calculate(params.CorporateTaxParams{
		GrossIncome:         10000000,
		AllowableDeductions: 2000000,
		Category:            constants.CategoryCommercial,
		AnnualTurnover:      84000000,
		PeriodStart:         testutil.Date(2025, 1, 1),
		PeriodEnd:           testutil.Date(2025, 12, 31),
		CapitalAllowances:   5000000,
		CharitableDonations: 1000000,
		PriorYearLosses:     2000000,
		WithholdingCredits:  40000,
		AdvancePayments:     500000,
	})
	require.NoError(t, err)

	assert.Equal(t, 8000000.0, result.AdjustedIncome)
	// Capital allowances capped at half the adjusted income.
	assert.Equal(t, 4000000.0, result.CapitalAllowancesClaimed)
	// Donations capped at 10% of adjusted income.
	assert.Equal(t, 800000.0, result.DonationsClaimed)
	// Loss relief capped at half the base after the first two reliefs.
	assert.Equal(t, 1600000.0, result.LossRelief)
	assert.Equal(t, 400000.0, result.LossCarryForward)
	assert.Equal(t, 1600000.0, result.TaxableIncome)
	assert.Equal(t, 0.40, result.RateApplied)
	assert.False(t, result.SmallBusinessRateUsed)
	assert.Equal(t, 640000.0, result.GrossTax)
	assert.Equal(t, 600000.0, result.NetTax)
	assert.Equal(t, 100000.0, result.BalanceDue)
	assert.Equal(t, 0.0, result.RefundDue)
	assert.Equal(t, testutil.Date(2026, 6, 30), result.DueDate)
}

func TestCorporateTaxService_Calculate_ManufacturingAllowance(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	result, err := service.Calculate(params.CorporateTaxParams{
		GrossIncome:       5000000,
		Category:          constants.CategoryManufacturing,
		AnnualTurnover:    84000000,
		PeriodStart:       testutil.Date(2025, 1, 1),
		PeriodEnd:         testutil.Date(2025, 12, 31),
		CapitalAllowances: 4500000,
	})
	require.NoError(t, err)

	// Manufacturers can absorb allowances up to the full adjusted income.
	assert.Equal(t, 4500000.0, result.CapitalAllowancesClaimed)
	assert.Equal(t, 500000.0, result.TaxableIncome)
	assert.Equal(t, 0.25, result.RateApplied)
}

func TestCorporateTaxService_Calculate_ReliefsExhaustIncome(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	// Allowances absorb all of the adjusted income before donations and
	// losses get a turn: both relieve nothing, and losses carry forward
	// in full.
	result, err := service.Calculate(params.CorporateTaxParams{
		GrossIncome:         100,
		Category:            constants.CategoryManufacturing,
		AnnualTurnover:      84000000,
		PeriodStart:         testutil.Date(2025, 1, 1),
		PeriodEnd:           testutil.Date(2025, 12, 31),
		CapitalAllowances:   100,
		CharitableDonations: 20,
		PriorYearLosses:     10,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.CapitalAllowancesClaimed)
	assert.Equal(t, 10.0, result.DonationsClaimed)
	assert.Equal(t, 0.0, result.LossRelief)
	assert.Equal(t, 10.0, result.LossCarryForward)
	assert.Equal(t, 0.0, result.TaxableIncome)
	assert.Equal(t, 0.0, result.GrossTax)
}

func TestCorporateTaxService_Calculate_SmallBusinessRate(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	tests := []struct {
		name         string
		category     constants.BusinessCategory
		turnover     float64
		rate         float64
		smallApplied bool
	}{
		{"non-commercial under threshold", constants.CategoryNonCommercial, 50000000, 0.20, true},
		{"non-commercial at threshold", constants.CategoryNonCommercial, 60000000, 0.25, false},
		{"banking never qualifies", constants.CategoryBanking, 10000000, 0.40, false},
		{"insurance never qualifies", constants.CategoryInsurance, 10000000, 0.40, false},
		{"mining never qualifies", constants.CategoryMining, 10000000, 0.40, false},
		{"commercial under threshold", constants.CategoryCommercial, 30000000, 0.20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Calculate(params.CorporateTaxParams{
				GrossIncome:    1000000,
				Category:       tt.category,
				AnnualTurnover: tt.turnover,
				PeriodStart:    testutil.Date(2025, 1, 1),
				PeriodEnd:      testutil.Date(2025, 12, 31),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.rate, result.RateApplied)
			assert.Equal(t, tt.smallApplied, result.SmallBusinessRateUsed)
		})
	}
}

func TestCorporateTaxService_Calculate_RefundPosition(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	result, err := service.Calculate(params.CorporateTaxParams{
		GrossIncome:     1000000,
		Category:        constants.CategoryCommercial,
		AnnualTurnover:  84000000,
		PeriodStart:     testutil.Date(2025, 1, 1),
		PeriodEnd:       testutil.Date(2025, 12, 31),
		AdvancePayments: 600000,
	})
	require.NoError(t, err)

	assert.Equal(t, 400000.0, result.NetTax)
	assert.Equal(t, 0.0, result.BalanceDue)
	assert.Equal(t, 200000.0, result.RefundDue)
}

func TestCorporateTaxService_Calculate_CreditsCannotGoNegative(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	result, err := service.Calculate(params.CorporateTaxParams{
		GrossIncome:        100000,
		Category:           constants.CategoryCommercial,
		AnnualTurnover:     84000000,
		PeriodStart:        testutil.Date(2025, 1, 1),
		PeriodEnd:          testutil.Date(2025, 12, 31),
		WithholdingCredits: 900000,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.NetTax)
}

func TestCorporateTaxService_Calculate_InvalidPeriod(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	_, err := service.Calculate(params.CorporateTaxParams{
		GrossIncome:    100000,
		Category:       constants.CategoryCommercial,
		AnnualTurnover: 84000000,
		PeriodStart:    testutil.Date(2025, 12, 31),
		PeriodEnd:      testutil.Date(2025, 1, 1),
	})
	assert.Error(t, err)
}

func TestCorporateTaxService_AdvanceSchedule(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	result, err := service.AdvanceSchedule(params.AdvanceScheduleParams{
		EstimatedTax: 1000000,
		PriorYearTax: 950000,
		Category:     constants.CategoryCommercial,
		Year:         2025,
	})
	require.NoError(t, err)

	// Uplifted prior year (950,000 x 1.10) beats the estimate.
	assert.True(t, result.BasedOnPrior)
	assert.Equal(t, 1045000.0, result.AnnualBase)
	require.Len(t, result.Installments, 4)
	assert.Equal(t, 261250.0, result.Installments[0].Amount)
	assert.Equal(t, testutil.Date(2025, 3, 15), result.Installments[0].DueDate)
	assert.Equal(t, testutil.Date(2025, 12, 15), result.Installments[3].DueDate)
}

func TestCorporateTaxService_AdvanceSchedule_EstimateWins(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	result, err := service.AdvanceSchedule(params.AdvanceScheduleParams{
		EstimatedTax: 2000000,
		PriorYearTax: 950000,
		Category:     constants.CategoryNonCommercial,
		Year:         2025,
	})
	require.NoError(t, err)

	assert.False(t, result.BasedOnPrior)
	assert.Equal(t, 2000000.0, result.AnnualBase)
	// Non-commercial businesses follow the default due months.
	assert.Equal(t, testutil.Date(2025, 4, 15), result.Installments[0].DueDate)
}

func TestCorporateTaxService_CapitalGains(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	tests := []struct {
		name        string
		p           params.CapitalGainsParams
		gain        float64
		exempt      float64
		taxableGain float64
		tax         float64
	}{
		{
			name: "long hold gets half exemption",
			p: params.CapitalGainsParams{
				AcquisitionCost:  1000000,
				DisposalProceeds: 3000000,
				AcquisitionDate:  testutil.Date(2020, 1, 1),
				DisposalDate:     testutil.Date(2025, 1, 1),
				Category:         constants.CategoryCommercial,
			},
			gain: 2000000, exempt: 1000000, taxableGain: 1000000, tax: 200000,
		},
		{
			name: "short hold fully taxable",
			p: params.CapitalGainsParams{
				AcquisitionCost:  1000000,
				DisposalProceeds: 3000000,
				AcquisitionDate:  testutil.Date(2023, 6, 1),
				DisposalDate:     testutil.Date(2025, 1, 1),
				Category:         constants.CategoryCommercial,
			},
			gain: 2000000, exempt: 0, taxableGain: 2000000, tax: 400000,
		},
		{
			name: "mining gets no exemption regardless of hold",
			p: params.CapitalGainsParams{
				AcquisitionCost:  1000000,
				DisposalProceeds: 3000000,
				AcquisitionDate:  testutil.Date(2015, 1, 1),
				DisposalDate:     testutil.Date(2025, 1, 1),
				Category:         constants.CategoryMining,
			},
			gain: 2000000, exempt: 0, taxableGain: 2000000, tax: 400000,
		},
		{
			name: "disposal at a loss",
			p: params.CapitalGainsParams{
				AcquisitionCost:  3000000,
				DisposalProceeds: 1000000,
				AcquisitionDate:  testutil.Date(2020, 1, 1),
				DisposalDate:     testutil.Date(2025, 1, 1),
				Category:         constants.CategoryCommercial,
			},
			gain: 0, exempt: 0, taxableGain: 0, tax: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.CapitalGains(tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.gain, result.Gain)
			assert.Equal(t, tt.exempt, result.ExemptPortion)
			assert.Equal(t, tt.taxableGain, result.TaxableGain)
			assert.Equal(t, tt.tax, result.Tax)
		})
	}
}

func TestCorporateTaxService_CapitalGains_InvalidDates(t *testing.T) {
	service := services.NewCorporateTaxService(testutil.Policy())

	_, err := service.CapitalGains(params.CapitalGainsParams{
		AcquisitionCost:  1000000,
		DisposalProceeds: 2000000,
		AcquisitionDate:  testutil.Date(2025, 1, 1),
		DisposalDate:     testutil.Date(2020, 1, 1),
		Category:         constants.CategoryCommercial,
	})
	assert.Error(t, err)
}
