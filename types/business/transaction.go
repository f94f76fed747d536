package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/kaietech/revenue-engine/constants"
)

// Transaction is a single VAT-relevant transaction as recorded by the
// caller. Amount is the recorded figure; IncludesVAT says whether tax
// is already embedded in it.
type Transaction struct {
	ID          uuid.UUID                      `json:"id"`
	Date        time.Time                      `json:"date"`
	Amount      float64                        `json:"amount"`
	Category    constants.VATCategory          `json:"category"`
	Direction   constants.TransactionDirection `json:"direction"`
	IncludesVAT bool                           `json:"includes_vat"`
	Description string                         `json:"description,omitempty"`
}

// WithholdingPayment is a single payment subject to withholding tax.
type WithholdingPayment struct {
	ID            uuid.UUID               `json:"id"`
	PayeeID       string                  `json:"payee_id"`
	PayeeName     string                  `json:"payee_name"`
	Date          time.Time               `json:"date"`
	Amount        float64                 `json:"amount"`
	PaymentType   constants.PaymentType   `json:"payment_type"`
	PayeeCategory constants.PayeeCategory `json:"payee_category"`
	TreatyCountry string                  `json:"treaty_country,omitempty"`
	Exempt        bool                    `json:"exempt"`
}

// WithholdingMonthlyRecord is the caller's historical record of one
// month's withholding, used by the compliance scan. PaidDate nil means
// the remittance is still outstanding.
type WithholdingMonthlyRecord struct {
	Year           int        `json:"year"`
	Month          time.Month `json:"month"`
	WithheldAmount float64    `json:"withheld_amount"`
	PaidDate       *time.Time `json:"paid_date,omitempty"`
}
