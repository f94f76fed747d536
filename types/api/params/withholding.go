package params

import (
	"time"

	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// WithholdingParams describes a single payment for withholding tax
// calculation.
type WithholdingParams struct {
	Amount        float64                 `json:"amount" validate:"gte=0"`
	PaymentType   constants.PaymentType   `json:"payment_type" validate:"required"`
	PayeeCategory constants.PayeeCategory `json:"payee_category" validate:"required"`
	TreatyCountry string                  `json:"treaty_country,omitempty"`
	Exempt        bool                    `json:"exempt"`
}

// MonthlyWithholdingReturnParams aggregates a month's payments into a
// return grouped per payee. FiledDate nil means unfiled; lateness is
// then measured against ReferenceDate.
type MonthlyWithholdingReturnParams struct {
	Year          int                           `json:"year" validate:"gte=2000"`
	Month         time.Month                    `json:"month" validate:"gte=1,lte=12"`
	Payments      []business.WithholdingPayment `json:"payments"`
	FiledDate     *time.Time                    `json:"filed_date,omitempty"`
	ReferenceDate time.Time                     `json:"reference_date" validate:"required"`
}

// WithholdingComplianceParams scans historical monthly remittance
// records as of ReferenceDate.
type WithholdingComplianceParams struct {
	Records       []business.WithholdingMonthlyRecord `json:"records"`
	ReferenceDate time.Time                           `json:"reference_date" validate:"required"`
}
