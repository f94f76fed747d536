package params

import (
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// InsuranceParams contains the inputs for a social-insurance
// contribution calculation.
type InsuranceParams struct {
	GrossIncome float64                    `json:"gross_income" validate:"gte=0"`
	Frequency   constants.Frequency        `json:"frequency" validate:"required"`
	Mode        constants.ContributionMode `json:"mode" validate:"required"`
}

// AnnualInsuranceParams aggregates a year of pay-period records into a
// contribution summary.
type AnnualInsuranceParams struct {
	Periods []business.PayPeriodRecord `json:"periods" validate:"min=1,dive"`
	Mode    constants.ContributionMode `json:"mode" validate:"required"`
}
