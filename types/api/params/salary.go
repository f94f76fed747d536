package params

import (
	"github.com/kaietech/revenue-engine/constants"
)

// SalaryTaxParams contains the gross earnings components for one
// employee pay period.
type SalaryTaxParams struct {
	BasicPay   float64             `json:"basic_pay" validate:"gte=0"`
	Overtime   float64             `json:"overtime" validate:"gte=0"`
	Allowances float64             `json:"allowances" validate:"gte=0"`
	Bonuses    float64             `json:"bonuses" validate:"gte=0"`
	Dependents int                 `json:"dependents" validate:"gte=0"`
	Frequency  constants.Frequency `json:"frequency" validate:"required"`
}

// Gross is the sum of all earnings components.
func (p SalaryTaxParams) Gross() float64 {
	return p.BasicPay + p.Overtime + p.Allowances + p.Bonuses
}
