package responses

import (
	"time"

	"github.com/kaietech/revenue-engine/constants"
)

// WithholdingResult is the computation for one payment.
type WithholdingResult struct {
	GrossAmount     float64               `json:"gross_amount"`
	PaymentType     constants.PaymentType `json:"payment_type"`
	Subject         bool                  `json:"subject"`
	ExemptReason    string                `json:"exempt_reason,omitempty"`
	BaseRate        float64               `json:"base_rate"`
	NonResident     bool                  `json:"non_resident"`
	TreatyReduction float64               `json:"treaty_reduction"`
	EffectiveRate   float64               `json:"effective_rate"`
	TaxWithheld     float64               `json:"tax_withheld"`
	NetPayment      float64               `json:"net_payment"`
	CalculatedAt    time.Time             `json:"calculated_at"`
}

// PayeeWithholdingSummary is the per-payee rollup inside a monthly
// return.
type PayeeWithholdingSummary struct {
	PayeeID      string  `json:"payee_id"`
	PayeeName    string  `json:"payee_name"`
	PaymentCount int     `json:"payment_count"`
	GrossAmount  float64 `json:"gross_amount"`
	TaxWithheld  float64 `json:"tax_withheld"`
	NetAmount    float64 `json:"net_amount"`
}

// WithholdingMonthlyReturn is the month's aggregation with any
// late-remittance penalty.
type WithholdingMonthlyReturn struct {
	Year          int                       `json:"year"`
	Month         time.Month                `json:"month"`
	DueDate       time.Time                 `json:"due_date"`
	PayeeCount    int                       `json:"payee_count"`
	TotalGross    float64                   `json:"total_gross"`
	TotalWithheld float64                   `json:"total_withheld"`
	TotalNet      float64                   `json:"total_net"`
	Payees        []PayeeWithholdingSummary `json:"payees"`
	MonthsLate    int                       `json:"months_late"`
	Penalty       float64                   `json:"penalty"`
	TotalDue      float64                   `json:"total_due"`
	CalculatedAt  time.Time                 `json:"calculated_at"`
}

// OverdueWithholdingMonth identifies a remittance month that is past
// due and unpaid.
type OverdueWithholdingMonth struct {
	Year        int        `json:"year"`
	Month       time.Month `json:"month"`
	DueDate     time.Time  `json:"due_date"`
	Outstanding float64    `json:"outstanding"`
	DaysOverdue int        `json:"days_overdue"`
}

// WithholdingComplianceResult scores historical remittance behavior.
type WithholdingComplianceResult struct {
	TotalMonths   int                       `json:"total_months"`
	OverdueMonths int                       `json:"overdue_months"`
	Score         float64                   `json:"score"`
	Overdue       []OverdueWithholdingMonth `json:"overdue"`
	CalculatedAt  time.Time                 `json:"calculated_at"`
}
