// Package config defines the versioned tax-year policy bundle that
// every calculator takes as an explicit input. A bundle is immutable
// after load; supporting several tax years side by side means holding
// several bundles, never mutating a shared one.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// PAYEPolicy holds the salary-tax schedule. Monetary figures are
// monthly unless named otherwise; brackets are annual.
type PAYEPolicy struct {
	MonthlyFreePay          float64               `json:"monthly_free_pay" mapstructure:"monthly_free_pay" validate:"gte=0"`
	DependentAllowance      float64               `json:"dependent_allowance" mapstructure:"dependent_allowance" validate:"gte=0"`
	MaxDependents           int                   `json:"max_dependents" mapstructure:"max_dependents" validate:"gte=0"`
	MonthlyOvertimeCeiling  float64               `json:"monthly_overtime_ceiling" mapstructure:"monthly_overtime_ceiling" validate:"gte=0"`
	AnnualBrackets          []business.TaxBracket `json:"annual_brackets" mapstructure:"annual_brackets" validate:"min=1,dive"`
	RemittanceDueDayOfMonth int                   `json:"remittance_due_day" mapstructure:"remittance_due_day" validate:"gte=1,lte=28"`
}

// NISPolicy holds the social-insurance contribution schedule.
type NISPolicy struct {
	EmployeeRate  float64 `json:"employee_rate" mapstructure:"employee_rate" validate:"gte=0,lte=1"`
	EmployerRate  float64 `json:"employer_rate" mapstructure:"employer_rate" validate:"gte=0,lte=1"`
	WeeklyCeiling float64 `json:"weekly_ceiling" mapstructure:"weekly_ceiling" validate:"gt=0"`
}

// VATPolicy holds the value-added tax schedule.
type VATPolicy struct {
	StandardRate          float64 `json:"standard_rate" mapstructure:"standard_rate" validate:"gte=0,lte=1"`
	RegistrationThreshold float64 `json:"registration_threshold" mapstructure:"registration_threshold" validate:"gte=0"` // annual turnover
	ReturnDueDay          int     `json:"return_due_day" mapstructure:"return_due_day" validate:"gte=1,lte=28"`
	LatePenaltyRate       float64 `json:"late_penalty_rate" mapstructure:"late_penalty_rate" validate:"gte=0"` // per month late
	MonthlyDeMinimis      float64 `json:"monthly_de_minimis" mapstructure:"monthly_de_minimis" validate:"gte=0"`
}

// CorporatePolicy holds corporate income tax and capital-gains rules.
type CorporatePolicy struct {
	Rates                     map[constants.BusinessCategory]float64 `json:"rates" mapstructure:"rates" validate:"required"`
	SmallBusinessRate         float64                                `json:"small_business_rate" mapstructure:"small_business_rate" validate:"gte=0,lte=1"`
	SmallBusinessTurnover     float64                                `json:"small_business_turnover" mapstructure:"small_business_turnover" validate:"gte=0"`
	CapitalAllowanceCap       float64                                `json:"capital_allowance_cap" mapstructure:"capital_allowance_cap" validate:"gte=0,lte=1"`
	ManufacturingAllowanceCap float64                                `json:"manufacturing_allowance_cap" mapstructure:"manufacturing_allowance_cap" validate:"gte=0,lte=1"`
	DonationCap               float64                                `json:"donation_cap" mapstructure:"donation_cap" validate:"gte=0,lte=1"`
	LossReliefCap             float64                                `json:"loss_relief_cap" mapstructure:"loss_relief_cap" validate:"gte=0,lte=1"`
	ReturnDueMonthsAfterEnd   int                                    `json:"return_due_months_after_end" mapstructure:"return_due_months_after_end" validate:"gte=1"`
	AdvancePriorYearFactor    float64                                `json:"advance_prior_year_factor" mapstructure:"advance_prior_year_factor" validate:"gte=1"`
	AdvanceDueMonths          map[constants.BusinessCategory][]int   `json:"advance_due_months" mapstructure:"advance_due_months"`
	DefaultAdvanceDueMonths   []int                                  `json:"default_advance_due_months" mapstructure:"default_advance_due_months" validate:"len=4"`
	CapitalGainsRate          float64                                `json:"capital_gains_rate" mapstructure:"capital_gains_rate" validate:"gte=0,lte=1"`
	CapitalGainsExemptYears   int                                    `json:"capital_gains_exempt_years" mapstructure:"capital_gains_exempt_years" validate:"gte=0"`
	CapitalGainsExemptShare   float64                                `json:"capital_gains_exempt_share" mapstructure:"capital_gains_exempt_share" validate:"gte=0,lte=1"`
}

// RateFor selects the corporate rate for a category, honoring the
// small-business rate for eligible categories under the turnover
// threshold. It fails rather than substituting a default, since a
// category without a configured rate would silently change a monetary
// outcome.
func (p CorporatePolicy) RateFor(category constants.BusinessCategory, annualTurnover float64) (float64, bool, error) {
	rate, ok := p.Rates[category]
	if !ok {
		return 0, false, fmt.Errorf("no corporate rate configured for category %q", string(category))
	}
	if category.SmallBusinessEligible() && annualTurnover > 0 && annualTurnover < p.SmallBusinessTurnover {
		return p.SmallBusinessRate, true, nil
	}
	return rate, false, nil
}

// AdvanceMonthsFor returns the quarterly installment due months for a
// category, falling back to the default schedule.
func (p CorporatePolicy) AdvanceMonthsFor(category constants.BusinessCategory) []int {
	if months, ok := p.AdvanceDueMonths[category]; ok && len(months) == 4 {
		return months
	}
	return p.DefaultAdvanceDueMonths
}

// WithholdingPolicy holds withholding tax rates and treaty reductions.
type WithholdingPolicy struct {
	Rates                 []WithholdingRate `json:"rates" mapstructure:"rates" validate:"min=1,dive"`
	// NonResidentMultiplier and MaximumRate are policy values rather
	// than constants: the statutory basis for the uplift is unsettled,
	// so jurisdictions configure them per tax year.
	NonResidentMultiplier float64           `json:"non_resident_multiplier" mapstructure:"non_resident_multiplier" validate:"gte=1"`
	MaximumRate           float64           `json:"maximum_rate" mapstructure:"maximum_rate" validate:"gt=0,lte=1"`
	MinimumPayment        float64           `json:"minimum_payment" mapstructure:"minimum_payment" validate:"gte=0"`
	ReturnDueDay          int               `json:"return_due_day" mapstructure:"return_due_day" validate:"gte=1,lte=28"`
	LatePenaltyRate       float64           `json:"late_penalty_rate" mapstructure:"late_penalty_rate" validate:"gte=0"` // per month late
	TreatyReductions      []TreatyReduction `json:"treaty_reductions" mapstructure:"treaty_reductions" validate:"dive"`
}

// WithholdingRate is the base rate for one payment type.
type WithholdingRate struct {
	PaymentType constants.PaymentType `json:"payment_type" mapstructure:"payment_type" validate:"required"`
	Rate        float64               `json:"rate" mapstructure:"rate" validate:"gte=0,lte=1"`
}

// TreatyReduction is a per-country, per-payment-type rate reduction
// under a bilateral tax treaty.
type TreatyReduction struct {
	Country     string                `json:"country" mapstructure:"country" validate:"required"`
	PaymentType constants.PaymentType `json:"payment_type" mapstructure:"payment_type" validate:"required"`
	Reduction   float64               `json:"reduction" mapstructure:"reduction" validate:"gte=0,lte=1"`
}

// BaseRateFor returns the configured base withholding rate for a
// payment type.
func (p WithholdingPolicy) BaseRateFor(paymentType constants.PaymentType) (float64, error) {
	for _, r := range p.Rates {
		if r.PaymentType == paymentType {
			return r.Rate, nil
		}
	}
	return 0, fmt.Errorf("no withholding rate configured for payment type %q", string(paymentType))
}

// TreatyReductionFor returns the treaty reduction for a country and
// payment type, zero when no treaty entry exists.
func (p WithholdingPolicy) TreatyReductionFor(country string, paymentType constants.PaymentType) float64 {
	for _, t := range p.TreatyReductions {
		if t.Country == country && t.PaymentType == paymentType {
			return t.Reduction
		}
	}
	return 0
}

// CompliancePolicy holds the obligation engine's accrual rates and the
// static requirement templates.
type CompliancePolicy struct {
	LateFilingRate     float64                          `json:"late_filing_rate" mapstructure:"late_filing_rate" validate:"gte=0"` // per 30-day block
	MaximumPenaltyRate float64                          `json:"maximum_penalty_rate" mapstructure:"maximum_penalty_rate" validate:"gte=0"`
	AnnualInterestRate float64                          `json:"annual_interest_rate" mapstructure:"annual_interest_rate" validate:"gte=0"`
	DelinquencyDays    int                              `json:"delinquency_days" mapstructure:"delinquency_days" validate:"gt=0"`
	LookbackMonths     int                              `json:"lookback_months" mapstructure:"lookback_months" validate:"gt=0"`
	Requirements       []business.ComplianceRequirement `json:"requirements" mapstructure:"requirements" validate:"min=1,dive"`
}

// RequirementByID looks up a requirement template. The obligation
// engine treats a miss as a fatal configuration error: it cannot
// compute penalty or interest without the template.
func (p CompliancePolicy) RequirementByID(id string) (business.ComplianceRequirement, error) {
	for _, req := range p.Requirements {
		if req.ID == id {
			return req, nil
		}
	}
	return business.ComplianceRequirement{}, fmt.Errorf("no compliance requirement configured with id %q", id)
}

// TaxYearPolicy is the complete policy bundle for one tax year.
type TaxYearPolicy struct {
	TaxYear     int               `json:"tax_year" mapstructure:"tax_year" validate:"gte=2000"`
	Currency    string            `json:"currency" mapstructure:"currency" validate:"len=3"`
	PAYE        PAYEPolicy        `json:"paye" mapstructure:"paye" validate:"required"`
	NIS         NISPolicy         `json:"nis" mapstructure:"nis" validate:"required"`
	VAT         VATPolicy         `json:"vat" mapstructure:"vat" validate:"required"`
	Corporate   CorporatePolicy   `json:"corporate" mapstructure:"corporate" validate:"required"`
	Withholding WithholdingPolicy `json:"withholding" mapstructure:"withholding" validate:"required"`
	Compliance  CompliancePolicy  `json:"compliance" mapstructure:"compliance" validate:"required"`
}

// Validate checks the bundle for structural problems beyond what
// struct tags can express: bracket ordering and enum membership.
func (p *TaxYearPolicy) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("policy bundle failed validation: %w", err)
	}

	if err := validateBrackets(p.PAYE.AnnualBrackets); err != nil {
		return fmt.Errorf("paye annual brackets: %w", err)
	}

	for category := range p.Corporate.Rates {
		if !category.Valid() {
			return fmt.Errorf("unknown business category %q in corporate rates", string(category))
		}
	}
	for _, r := range p.Withholding.Rates {
		if !r.PaymentType.Valid() {
			return fmt.Errorf("unknown payment type %q in withholding rates", string(r.PaymentType))
		}
	}
	for _, req := range p.Compliance.Requirements {
		if !req.TaxType.Valid() {
			return fmt.Errorf("unknown tax type %q in requirement %q", string(req.TaxType), req.ID)
		}
		if !req.Frequency.Valid() {
			return fmt.Errorf("unknown frequency %q in requirement %q", string(req.Frequency), req.ID)
		}
		if !req.FilingType.Valid() {
			return fmt.Errorf("unknown filing type %q in requirement %q", string(req.FilingType), req.ID)
		}
		if req.Frequency == constants.FrequencyMonthly && (req.DueDay < 1 || req.DueDay > 28) {
			return fmt.Errorf("monthly requirement %q needs a due day between 1 and 28", req.ID)
		}
		if req.Frequency == constants.FrequencyAnnual && (req.DueMonthOffset < 1 || req.DueDay < 1) {
			return fmt.Errorf("annual requirement %q needs a due month offset and due day", req.ID)
		}
	}

	return nil
}

func validateBrackets(brackets []business.TaxBracket) error {
	for i, b := range brackets {
		last := i == len(brackets)-1
		if last {
			if !b.Unbounded() {
				return fmt.Errorf("final bracket must be unbounded, got upper bound %.2f", b.UpperBound)
			}
			continue
		}
		if b.Unbounded() {
			return fmt.Errorf("bracket %d is unbounded but is not the final bracket", i)
		}
		if b.UpperBound <= b.LowerBound {
			return fmt.Errorf("bracket %d upper bound %.2f not above lower bound %.2f", i, b.UpperBound, b.LowerBound)
		}
		if brackets[i+1].LowerBound != b.UpperBound {
			return fmt.Errorf("bracket %d upper bound %.2f does not meet bracket %d lower bound %.2f",
				i, b.UpperBound, i+1, brackets[i+1].LowerBound)
		}
	}
	return nil
}
