package responses

import (
	"time"

	"github.com/kaietech/revenue-engine/constants"
)

// InsuranceResult carries one pay period's social-insurance
// contribution breakdown, expressed at the requested frequency.
type InsuranceResult struct {
	GrossIncome          float64                    `json:"gross_income"`
	WeeklyInsurable      float64                    `json:"weekly_insurable"`
	CeilingExceeded      bool                       `json:"ceiling_exceeded"`
	ExcessAboveCeiling   float64                    `json:"excess_above_ceiling"`
	EmployeeContribution float64                    `json:"employee_contribution"`
	EmployerContribution float64                    `json:"employer_contribution"`
	TotalContribution    float64                    `json:"total_contribution"`
	Frequency            constants.Frequency        `json:"frequency"`
	Mode                 constants.ContributionMode `json:"mode"`
	CalculatedAt         time.Time                  `json:"calculated_at"`
}

// AnnualInsuranceSummary aggregates contributions over a set of pay
// periods.
type AnnualInsuranceSummary struct {
	Periods              int       `json:"periods"`
	PeriodsOverCeiling   int       `json:"periods_over_ceiling"`
	TotalInsurable       float64   `json:"total_insurable"`
	EmployeeContribution float64   `json:"employee_contribution"`
	EmployerContribution float64   `json:"employer_contribution"`
	TotalContribution    float64   `json:"total_contribution"`
	CalculatedAt         time.Time `json:"calculated_at"`
}
