package responses

import (
	"time"

	"github.com/kaietech/revenue-engine/constants"
)

// CorporateTaxResult is the full corporate income tax computation for
// one accounting period. Claimed figures are post-cap amounts.
type CorporateTaxResult struct {
	GrossIncome              float64                    `json:"gross_income"`
	AllowableDeductions      float64                    `json:"allowable_deductions"`
	AdjustedIncome           float64                    `json:"adjusted_income"`
	CapitalAllowancesClaimed float64                    `json:"capital_allowances_claimed"`
	DonationsClaimed         float64                    `json:"donations_claimed"`
	LossRelief               float64                    `json:"loss_relief"`
	LossCarryForward         float64                    `json:"loss_carry_forward"`
	TaxableIncome            float64                    `json:"taxable_income"`
	Category                 constants.BusinessCategory `json:"category"`
	RateApplied              float64                    `json:"rate_applied"`
	SmallBusinessRateUsed    bool                       `json:"small_business_rate_used"`
	GrossTax                 float64                    `json:"gross_tax"`
	WithholdingCredits       float64                    `json:"withholding_credits"`
	NetTax                   float64                    `json:"net_tax"`
	AdvancePayments          float64                    `json:"advance_payments"`
	BalanceDue               float64                    `json:"balance_due"`
	RefundDue                float64                    `json:"refund_due"`
	DueDate                  time.Time                  `json:"due_date"`
	CalculatedAt             time.Time                  `json:"calculated_at"`
}

// AdvanceInstallment is one quarterly advance payment.
type AdvanceInstallment struct {
	Quarter int       `json:"quarter"`
	DueDate time.Time `json:"due_date"`
	Amount  float64   `json:"amount"`
}

// AdvanceScheduleResult is the quarterly advance-payment schedule for
// an accounting year.
type AdvanceScheduleResult struct {
	AnnualBase   float64              `json:"annual_base"`
	BasedOnPrior bool                 `json:"based_on_prior_year"`
	Installments []AdvanceInstallment `json:"installments"`
	CalculatedAt time.Time            `json:"calculated_at"`
}

// CapitalGainsResult is the capital-gains tax computation for one
// asset disposal.
type CapitalGainsResult struct {
	Gain          float64   `json:"gain"`
	HoldingYears  float64   `json:"holding_years"`
	ExemptPortion float64   `json:"exempt_portion"`
	TaxableGain   float64   `json:"taxable_gain"`
	RateApplied   float64   `json:"rate_applied"`
	Tax           float64   `json:"tax"`
	CalculatedAt  time.Time `json:"calculated_at"`
}
