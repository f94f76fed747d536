package params

import (
	"time"

	"github.com/kaietech/revenue-engine/constants"
)

// CorporateTaxParams contains one accounting period's figures for a
// corporate income tax computation.
type CorporateTaxParams struct {
	GrossIncome         float64                    `json:"gross_income" validate:"gte=0"`
	AllowableDeductions float64                    `json:"allowable_deductions" validate:"gte=0"`
	Category            constants.BusinessCategory `json:"category" validate:"required"`
	AnnualTurnover      float64                    `json:"annual_turnover" validate:"gte=0"`
	PeriodStart         time.Time                  `json:"period_start" validate:"required"`
	PeriodEnd           time.Time                  `json:"period_end" validate:"required"`
	PriorYearLosses     float64                    `json:"prior_year_losses" validate:"gte=0"`
	CapitalAllowances   float64                    `json:"capital_allowances" validate:"gte=0"`
	CharitableDonations float64                    `json:"charitable_donations" validate:"gte=0"`
	AdvancePayments     float64                    `json:"advance_payments" validate:"gte=0"`
	WithholdingCredits  float64                    `json:"withholding_credits" validate:"gte=0"`
}

// AdvanceScheduleParams derives the quarterly advance-payment schedule
// for an accounting year.
type AdvanceScheduleParams struct {
	EstimatedTax float64                    `json:"estimated_tax" validate:"gte=0"`
	PriorYearTax float64                    `json:"prior_year_tax" validate:"gte=0"`
	Category     constants.BusinessCategory `json:"category" validate:"required"`
	Year         int                        `json:"year" validate:"gte=2000"`
}

// CapitalGainsParams describes an asset disposal.
type CapitalGainsParams struct {
	AcquisitionCost  float64                    `json:"acquisition_cost" validate:"gte=0"`
	DisposalProceeds float64                    `json:"disposal_proceeds" validate:"gte=0"`
	AcquisitionDate  time.Time                  `json:"acquisition_date" validate:"required"`
	DisposalDate     time.Time                  `json:"disposal_date" validate:"required"`
	Category         constants.BusinessCategory `json:"category" validate:"required"`
}
