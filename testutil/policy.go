// Package testutil provides fixtures shared by the service tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/kaietech/revenue-engine/config"
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// Policy returns the default tax-year bundle; tests mutate their own
// copy when they need synthetic rates.
func Policy() *config.TaxYearPolicy {
	return config.DefaultPolicy()
}

// Date builds a UTC midnight timestamp, the convention used for all
// due-date comparisons in tests.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Profile returns a registered employer with a VAT registration, the
// common case for compliance tests.
func Profile(registered time.Time) business.BusinessProfile {
	return business.BusinessProfile{
		BusinessID:            uuid.MustParse("0f4f3f58-9f5e-4c86-9a3f-6d2c33ae51b4"),
		Name:                  "Demerara Trading Ltd",
		Category:              constants.CategoryCommercial,
		RegistrationDate:      registered,
		AnnualTurnover:        84000000,
		EmployeeCount:         12,
		VATRegistered:         true,
		MakesContractPayments: true,
	}
}
