package responses

import (
	"time"

	"github.com/google/uuid"
	"github.com/kaietech/revenue-engine/constants"
)

// VATResult is the breakdown for one transaction.
type VATResult struct {
	NetAmount            float64               `json:"net_amount"`
	VATAmount            float64               `json:"vat_amount"`
	GrossAmount          float64               `json:"gross_amount"`
	RateApplied          float64               `json:"rate_applied"`
	Category             constants.VATCategory `json:"category"`
	RegistrationRequired bool                  `json:"registration_required"`
	CalculatedAt         time.Time             `json:"calculated_at"`
}

// VATReturnResult is a period return with input/output netting and any
// late-filing accruals.
type VATReturnResult struct {
	BusinessID       uuid.UUID `json:"business_id"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	TransactionCount int       `json:"transaction_count"`
	OutputTax        float64   `json:"output_tax"`
	InputTax         float64   `json:"input_tax"`
	CarriedBalance   float64   `json:"carried_balance"`
	NetTax           float64   `json:"net_tax"`
	RefundDue        bool      `json:"refund_due"`
	DueDate          time.Time `json:"due_date"`
	MonthsLate       int       `json:"months_late"`
	Penalty          float64   `json:"penalty"`
	TotalPayable     float64   `json:"total_payable"`
	CalculatedAt     time.Time `json:"calculated_at"`
}

// PartialExemptionResult is the recoverable input tax computation for
// a partially exempt business.
type PartialExemptionResult struct {
	InputTax         float64   `json:"input_tax"`
	ExemptRatio      float64   `json:"exempt_ratio"`
	NonRecoverable   float64   `json:"non_recoverable"`
	Recoverable      float64   `json:"recoverable"`
	DeMinimisApplied bool      `json:"de_minimis_applied"`
	CalculatedAt     time.Time `json:"calculated_at"`
}
