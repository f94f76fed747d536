package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/kaietech/revenue-engine/constants"
)

// ComplianceRequirement is a static, per-jurisdiction filing template.
// It is policy data: defined once per tax-year configuration and
// read-only at runtime, never tied to any one business.
type ComplianceRequirement struct {
	ID               string               `json:"id" mapstructure:"id" validate:"required"`
	TaxType          constants.TaxType    `json:"tax_type" mapstructure:"tax_type" validate:"required"`
	FilingType       constants.FilingType `json:"filing_type" mapstructure:"filing_type" validate:"required"`
	Frequency        constants.Frequency  `json:"frequency" mapstructure:"frequency" validate:"required"`
	Description      string               `json:"description" mapstructure:"description"`
	PenaltyRate      float64              `json:"penalty_rate" mapstructure:"penalty_rate" validate:"gte=0"`
	GracePeriodDays  int                  `json:"grace_period_days" mapstructure:"grace_period_days" validate:"gte=0"`
	MinimumThreshold float64              `json:"minimum_threshold" mapstructure:"minimum_threshold" validate:"gte=0"`
	// DueDay is the fixed day-of-month a filing falls due. Monthly
	// filings are limited to day 28 so every month has the day.
	DueDay           int                  `json:"due_day" mapstructure:"due_day" validate:"gte=0,lte=31"`
	// DueMonthOffset is the number of months after period end at which
	// an annual filing falls due.
	DueMonthOffset   int                  `json:"due_month_offset" mapstructure:"due_month_offset" validate:"gte=0"`
}

// ComplianceRecord is a per-business, per-due-date instantiation of a
// requirement. Records are never deleted; a record is satisfied once
// both FiledDate and PaidDate are set. The engine recomputes Status,
// PenaltyAmount, InterestAmount and TotalDue on every assessment.
//
// Invariant: TotalDue = Amount + PenaltyAmount + InterestAmount, >= 0.
type ComplianceRecord struct {
	ID             string                     `json:"id"`
	RequirementID  string                     `json:"requirement_id"`
	BusinessID     uuid.UUID                  `json:"business_id"`
	DueDate        time.Time                  `json:"due_date"`
	FiledDate      *time.Time                 `json:"filed_date,omitempty"`
	PaidDate       *time.Time                 `json:"paid_date,omitempty"`
	Amount         float64                    `json:"amount"`
	Status         constants.ComplianceStatus `json:"status"`
	PenaltyAmount  float64                    `json:"penalty_amount"`
	InterestAmount float64                    `json:"interest_amount"`
	TotalDue       float64                    `json:"total_due"`
	LastUpdated    time.Time                  `json:"last_updated"`
}

// Satisfied reports whether the obligation has been both filed and paid.
func (r ComplianceRecord) Satisfied() bool {
	return r.FiledDate != nil && r.PaidDate != nil
}

// BusinessProfile is the registration data the obligation engine keys
// applicability decisions on.
type BusinessProfile struct {
	BusinessID            uuid.UUID                  `json:"business_id"`
	Name                  string                     `json:"name"`
	Category              constants.BusinessCategory `json:"category"`
	RegistrationDate      time.Time                  `json:"registration_date"`
	AnnualTurnover        float64                    `json:"annual_turnover"`
	EmployeeCount         int                        `json:"employee_count"`
	VATRegistered         bool                       `json:"vat_registered"`
	MakesContractPayments bool                       `json:"makes_contract_payments"`
}

// NextAction is one prioritized step out of an assessment.
type NextAction struct {
	RecordID    string             `json:"record_id"`
	Description string             `json:"description"`
	DueDate     time.Time          `json:"due_date"`
	Priority    constants.Priority `json:"priority"`
}
