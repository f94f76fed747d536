package services

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kaietech/revenue-engine/config"
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/helpers"
	"github.com/kaietech/revenue-engine/logger"
	"github.com/kaietech/revenue-engine/types/api/params"
	"github.com/kaietech/revenue-engine/types/api/responses"
)

// InsuranceService computes national-insurance contributions against
// the weekly insurable ceiling.
type InsuranceService struct {
	policy   *config.TaxYearPolicy
	logger   *zap.Logger
	validate *validator.Validate
}

// NewInsuranceService creates a new insurance service
func NewInsuranceService(policy *config.TaxYearPolicy) *InsuranceService {
	return &InsuranceService{
		policy:   policy,
		logger:   logger.Log,
		validate: validator.New(),
	}
}

// contribution is the unrounded weekly-level computation shared by the
// single-period and annual-summary entry points.
type contribution struct {
	weeklyInsurable float64
	weeklyExcess    float64
	exceeded        bool
	employee        float64 // at the requested frequency
	employer        float64
	insurable       float64 // at the requested frequency
}

// Calculate computes the contribution for one pay period, expressed at
// the requested frequency.
func (s *InsuranceService) Calculate(p params.InsuranceParams) (*responses.InsuranceResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid insurance params: %w", err)
	}
	if !p.Frequency.Valid() {
		return nil, invalidField("frequency", "unknown payment frequency %q", string(p.Frequency))
	}
	if !p.Mode.Valid() {
		return nil, invalidField("mode", "unknown contribution mode %q", string(p.Mode))
	}

	c, err := s.compute(p.GrossIncome, p.Frequency, p.Mode)
	if err != nil {
		return nil, err
	}

	employee := helpers.RoundMoney(c.employee)
	employer := helpers.RoundMoney(c.employer)

	return &responses.InsuranceResult{
		GrossIncome:          helpers.RoundMoney(p.GrossIncome),
		WeeklyInsurable:      helpers.RoundMoney(c.weeklyInsurable),
		CeilingExceeded:      c.exceeded,
		ExcessAboveCeiling:   helpers.RoundMoney(c.weeklyExcess),
		EmployeeContribution: employee,
		EmployerContribution: employer,
		TotalContribution:    helpers.RoundMoney(employee + employer),
		Frequency:            p.Frequency,
		Mode:                 p.Mode,
		CalculatedAt:         time.Now(),
	}, nil
}

// AnnualSummary aggregates a year of pay-period records and flags how
// many periods ran over the insurable ceiling.
func (s *InsuranceService) AnnualSummary(p params.AnnualInsuranceParams) (*responses.AnnualInsuranceSummary, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid annual insurance params: %w", err)
	}
	if !p.Mode.Valid() {
		return nil, invalidField("mode", "unknown contribution mode %q", string(p.Mode))
	}

	s.logger.Info("building annual insurance summary",
		zap.Int("periods", len(p.Periods)),
		zap.String("mode", string(p.Mode)))

	summary := &responses.AnnualInsuranceSummary{Periods: len(p.Periods)}
	var employee, employer, insurable float64

	for i, period := range p.Periods {
		if period.GrossIncome < 0 {
			return nil, invalidField("periods", "period %d has negative gross income", i)
		}
		c, err := s.compute(period.GrossIncome, period.Frequency, p.Mode)
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", i, err)
		}
		if c.exceeded {
			summary.PeriodsOverCeiling++
		}
		employee += c.employee
		employer += c.employer
		insurable += c.insurable
	}

	summary.EmployeeContribution = helpers.RoundMoney(employee)
	summary.EmployerContribution = helpers.RoundMoney(employer)
	// Total is the sum of the rounded shares so the summary always adds up.
	summary.TotalContribution = helpers.RoundMoney(summary.EmployeeContribution + summary.EmployerContribution)
	summary.TotalInsurable = helpers.RoundMoney(insurable)
	summary.CalculatedAt = time.Now()
	return summary, nil
}

// compute does the weekly-ceiling work. The conversions deliberately
// use the fixed 52/12 and 52 multipliers rather than the generic
// frequency converter: the ceiling is defined per week, and capping
// must happen at the weekly level before scaling back out.
func (s *InsuranceService) compute(gross float64, frequency constants.Frequency, mode constants.ContributionMode) (contribution, error) {
	nis := s.policy.NIS

	var weekly float64
	switch frequency {
	case constants.FrequencyWeekly:
		weekly = gross
	case constants.FrequencyBiWeekly:
		weekly = gross / 2
	case constants.FrequencyMonthly:
		weekly = gross * constants.MonthsPerYear / constants.WeeksPerYear
	case constants.FrequencyAnnual:
		weekly = gross / constants.WeeksPerYear
	default:
		return contribution{}, &helpers.UnknownFrequencyError{Frequency: frequency}
	}

	insurable := weekly
	var excess float64
	exceeded := weekly > nis.WeeklyCeiling
	if exceeded {
		insurable = nis.WeeklyCeiling
		excess = weekly - nis.WeeklyCeiling
	}

	var backFactor float64
	switch frequency {
	case constants.FrequencyWeekly:
		backFactor = 1
	case constants.FrequencyBiWeekly:
		backFactor = 2
	case constants.FrequencyMonthly:
		backFactor = constants.WeeksPerYear / constants.MonthsPerYear
	case constants.FrequencyAnnual:
		backFactor = constants.WeeksPerYear
	}

	employee := insurable * nis.EmployeeRate * backFactor
	employer := insurable * nis.EmployerRate * backFactor

	switch mode {
	case constants.ModeEmployee:
		employer = 0
	case constants.ModeEmployer:
		employee = 0
	case constants.ModeSelfEmployed:
		// Self-employed contributors carry both shares themselves.
		employee = insurable * (nis.EmployeeRate + nis.EmployerRate) * backFactor
		employer = 0
	case constants.ModeCombined:
		// keep both
	}

	return contribution{
		weeklyInsurable: insurable,
		weeklyExcess:    excess,
		exceeded:        exceeded,
		employee:        employee,
		employer:        employer,
		insurable:       insurable * backFactor,
	}, nil
}
