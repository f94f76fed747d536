package responses

import (
	"time"

	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// SalaryTaxResult carries a full PAYE breakdown for one pay period.
// Every deduction field is the amount actually applied, not merely
// requested.
type SalaryTaxResult struct {
	GrossIncome        float64               `json:"gross_income"`
	FreePay            float64               `json:"free_pay"`
	DependentAllowance float64               `json:"dependent_allowance"`
	TaxFreeOvertime    float64               `json:"tax_free_overtime"`
	InsuranceDeduction float64               `json:"insurance_deduction"`
	TaxableIncome      float64               `json:"taxable_income"`
	TotalTax           float64               `json:"total_tax"`
	// BracketBreakdown is expressed on the annualized taxable income,
	// matching the annual bracket bounds; TotalTax is at the pay
	// frequency.
	BracketBreakdown   []business.BracketTax `json:"bracket_breakdown"`
	EffectiveRate      float64               `json:"effective_rate"`
	MarginalRate       float64               `json:"marginal_rate"`
	NetPay             float64               `json:"net_pay"`
	Frequency          constants.Frequency   `json:"frequency"`
	CalculatedAt       time.Time             `json:"calculated_at"`
}
