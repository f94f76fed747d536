package business

import (
	"time"

	"github.com/kaietech/revenue-engine/constants"
)

// PayPeriodRecord is one historical pay period used when building an
// annual social-insurance summary.
type PayPeriodRecord struct {
	PeriodEnd   time.Time           `json:"period_end"`
	GrossIncome float64             `json:"gross_income"`
	Frequency   constants.Frequency `json:"frequency"`
}
