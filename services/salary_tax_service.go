package services

import (
	"fmt"
	"sync"
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

// SalaryTaxService computes PAYE salary tax for a single pay period or
// a payroll batch. The free pay, dependent allowance and overtime
// carve-out are policy values scaled to the pay frequency; brackets
// are applied on the annualized taxable income.
type SalaryTaxService struct {
	policy    *config.TaxYearPolicy
	logger    *zap.Logger
	validate  *validator.Validate
	brackets  *BracketCalculator
	insurance *InsuranceService
}

// NewSalaryTaxService creates a new salary tax service
func NewSalaryTaxService(policy *config.TaxYearPolicy) *SalaryTaxService {
	return &SalaryTaxService{
		policy:    policy,
		logger:    logger.Log,
		validate:  validator.New(),
		brackets:  NewBracketCalculator(),
		insurance: NewInsuranceService(policy),
	}
}

// Calculate computes the salary tax breakdown for one pay period.
func (s *SalaryTaxService) Calculate(p params.SalaryTaxParams) (*responses.SalaryTaxResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid salary tax params: %w", err)
	}
	if !p.Frequency.Valid() {
		return nil, invalidField("frequency", "unknown payment frequency %q", string(p.Frequency))
	}

	paye := s.policy.PAYE
	gross := p.Gross()

	freePay, err := helpers.ConvertAmount(paye.MonthlyFreePay, constants.FrequencyMonthly, p.Frequency)
	if err != nil {
		return nil, err
	}

	dependents := p.Dependents
	if dependents > paye.MaxDependents {
		dependents = paye.MaxDependents
	}
	dependentAllowance, err := helpers.ConvertAmount(
		float64(dependents)*paye.DependentAllowance, constants.FrequencyMonthly, p.Frequency)
	if err != nil {
		return nil, err
	}

	overtimeCeiling, err := helpers.ConvertAmount(paye.MonthlyOvertimeCeiling, constants.FrequencyMonthly, p.Frequency)
	if err != nil {
		return nil, err
	}
	taxFreeOvertime := p.Overtime
	if taxFreeOvertime > overtimeCeiling {
		taxFreeOvertime = overtimeCeiling
	}

	nis, err := s.insurance.compute(gross, p.Frequency, constants.ModeEmployee)
	if err != nil {
		return nil, err
	}

	taxable := helpers.ClampNonNegative(gross - freePay - dependentAllowance - taxFreeOvertime - nis.employee)

	annualTaxable, err := helpers.ConvertAmount(taxable, p.Frequency, constants.FrequencyAnnual)
	if err != nil {
		return nil, err
	}
	annualTax, breakdown := s.brackets.Calculate(annualTaxable, paye.AnnualBrackets)

	totalTax, err := helpers.ConvertAmount(annualTax, constants.FrequencyAnnual, p.Frequency)
	if err != nil {
		return nil, err
	}

	totalTax = helpers.RoundMoney(totalTax)
	insurance := helpers.RoundMoney(nis.employee)

	var effectiveRate float64
	if gross > 0 {
		effectiveRate = totalTax / gross
	}

	for i := range breakdown {
		breakdown[i].TaxableAmount = helpers.RoundMoney(breakdown[i].TaxableAmount)
		breakdown[i].Tax = helpers.RoundMoney(breakdown[i].Tax)
	}

	return &responses.SalaryTaxResult{
		GrossIncome:        helpers.RoundMoney(gross),
		FreePay:            helpers.RoundMoney(freePay),
		DependentAllowance: helpers.RoundMoney(dependentAllowance),
		TaxFreeOvertime:    helpers.RoundMoney(taxFreeOvertime),
		InsuranceDeduction: insurance,
		TaxableIncome:      helpers.RoundMoney(taxable),
		TotalTax:           totalTax,
		BracketBreakdown:   breakdown,
		EffectiveRate:      helpers.RoundRate(effectiveRate),
		MarginalRate:       s.brackets.MarginalRate(annualTaxable, paye.AnnualBrackets),
		NetPay:             helpers.RoundMoney(gross - insurance - totalTax),
		Frequency:          p.Frequency,
		CalculatedAt:       time.Now(),
	}, nil
}

// RemittanceDueDate is the statutory date by which an employer must
// remit a month's PAYE deductions: a fixed day of the following month.
func (s *SalaryTaxService) RemittanceDueDate(year int, month time.Month) time.Time {
	return time.Date(year, month+1, s.policy.PAYE.RemittanceDueDayOfMonth, 0, 0, 0, 0, time.UTC)
}

// CalculatePayroll runs the calculation for a batch of employees.
// Entries are independent, so the batch fans out across goroutines;
// output order matches input order. The first failure aborts the
// whole batch since payroll is all-or-nothing.
func (s *SalaryTaxService) CalculatePayroll(batch []params.SalaryTaxParams) ([]responses.SalaryTaxResult, error) {
	s.logger.Info("calculating payroll batch", zap.Int("employees", len(batch)))

	results := make([]responses.SalaryTaxResult, len(batch))
	errs := make([]error, len(batch))

	var wg sync.WaitGroup
	for i := range batch {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.Calculate(batch[i])
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = *res
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("payroll entry %d: %w", i, err)
		}
	}
	return results, nil
}
