package params

import (
	"time"

	"github.com/google/uuid"
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// VATParams describes a single transaction for value-added tax
// calculation. CustomRate, when set, overrides the standard rate for
// standard-category supplies.
type VATParams struct {
	Amount      float64                        `json:"amount" validate:"gte=0"`
	Category    constants.VATCategory          `json:"category" validate:"required"`
	Direction   constants.TransactionDirection `json:"direction" validate:"required"`
	IncludesVAT bool                           `json:"includes_vat"`
	CustomRate  *float64                       `json:"custom_rate,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// VATReturnParams aggregates a period's transactions into a return.
// FiledDate nil means the return has not been filed; lateness is then
// measured against ReferenceDate.
type VATReturnParams struct {
	BusinessID     uuid.UUID              `json:"business_id" validate:"required"`
	PeriodStart    time.Time              `json:"period_start" validate:"required"`
	PeriodEnd      time.Time              `json:"period_end" validate:"required"`
	Transactions   []business.Transaction `json:"transactions"`
	CarriedBalance float64                `json:"carried_balance"`
	FiledDate      *time.Time             `json:"filed_date,omitempty"`
	ReferenceDate  time.Time              `json:"reference_date" validate:"required"`
}

// PartialExemptionParams computes recoverable input tax for a business
// making both taxable and exempt supplies.
type PartialExemptionParams struct {
	InputTax       float64 `json:"input_tax" validate:"gte=0"`
	ExemptSupplies float64 `json:"exempt_supplies" validate:"gte=0"`
	TotalSupplies  float64 `json:"total_supplies" validate:"gte=0"`
}
