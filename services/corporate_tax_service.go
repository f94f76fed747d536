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

const hoursPerYear = 24 * 365.25

// CorporateTaxService computes corporate income tax, quarterly advance
// schedules and capital-gains tax.
type CorporateTaxService struct {
	policy   *config.TaxYearPolicy
	logger   *zap.Logger
	validate *validator.Validate
}

// NewCorporateTaxService creates a new corporate tax service
func NewCorporateTaxService(policy *config.TaxYearPolicy) *CorporateTaxService {
	return &CorporateTaxService{
		policy:   policy,
		logger:   logger.Log,
		validate: validator.New(),
	}
}

// Calculate computes one accounting period's corporate income tax.
// Reliefs apply in statutory order: capital allowances, charitable
// donations, then loss carry-forward, each against its own cap.
func (s *CorporateTaxService) Calculate(p params.CorporateTaxParams) (*responses.CorporateTaxResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid corporate tax params: %w", err)
	}
	if !p.Category.Valid() {
		return nil, invalidField("category", "unknown business category %q", string(p.Category))
	}
	if !p.PeriodStart.Before(p.PeriodEnd) {
		return nil, invalidField("period_start", "period start %s is not before period end %s",
			p.PeriodStart.Format(time.DateOnly), p.PeriodEnd.Format(time.DateOnly))
	}

	corp := s.policy.Corporate
	adjusted := helpers.ClampNonNegative(p.GrossIncome - p.AllowableDeductions)

	allowanceCap := corp.CapitalAllowanceCap
	if p.Category == constants.CategoryManufacturing {
		allowanceCap = corp.ManufacturingAllowanceCap
	}
	allowancesClaimed := p.CapitalAllowances
	if limit := adjusted * allowanceCap; allowancesClaimed > limit {
		allowancesClaimed = limit
	}

	donationsClaimed := p.CharitableDonations
	if limit := adjusted * corp.DonationCap; donationsClaimed > limit {
		donationsClaimed = limit
	}

	// Allowances at their cap plus donations can exceed adjusted income;
	// the relief base never goes below zero.
	base := helpers.ClampNonNegative(adjusted - allowancesClaimed - donationsClaimed)

	lossRelief := p.PriorYearLosses
	if limit := base * corp.LossReliefCap; lossRelief > limit {
		lossRelief = limit
	}
	carryForward := p.PriorYearLosses - lossRelief

	taxable := helpers.ClampNonNegative(base - lossRelief)

	rate, smallBusiness, err := corp.RateFor(p.Category, p.AnnualTurnover)
	if err != nil {
		return nil, err
	}

	dueDate := p.PeriodEnd.AddDate(0, corp.ReturnDueMonthsAfterEnd, 0)
	// AddDate normalizes Dec 31 + 6 months into Jul 1; clamp back to
	// the last day of the intended month.
	if dueDate.Day() < p.PeriodEnd.Day() {
		dueDate = dueDate.AddDate(0, 0, -dueDate.Day())
	}

	grossTax := taxable * rate
	netTax := helpers.ClampNonNegative(grossTax - p.WithholdingCredits)
	balance := netTax - p.AdvancePayments

	var balanceDue, refundDue float64
	if balance >= 0 {
		balanceDue = balance
	} else {
		refundDue = -balance
	}

	s.logger.Debug("corporate tax computed",
		zap.String("category", string(p.Category)),
		zap.Float64("taxable_income", taxable),
		zap.Float64("rate", rate))

	return &responses.CorporateTaxResult{
		GrossIncome:              helpers.RoundMoney(p.GrossIncome),
		AllowableDeductions:      helpers.RoundMoney(p.AllowableDeductions),
		AdjustedIncome:           helpers.RoundMoney(adjusted),
		CapitalAllowancesClaimed: helpers.RoundMoney(allowancesClaimed),
		DonationsClaimed:         helpers.RoundMoney(donationsClaimed),
		LossRelief:               helpers.RoundMoney(lossRelief),
		LossCarryForward:         helpers.RoundMoney(carryForward),
		TaxableIncome:            helpers.RoundMoney(taxable),
		Category:                 p.Category,
		RateApplied:              rate,
		SmallBusinessRateUsed:    smallBusiness,
		GrossTax:                 helpers.RoundMoney(grossTax),
		WithholdingCredits:       helpers.RoundMoney(p.WithholdingCredits),
		NetTax:                   helpers.RoundMoney(netTax),
		AdvancePayments:          helpers.RoundMoney(p.AdvancePayments),
		BalanceDue:               helpers.RoundMoney(balanceDue),
		RefundDue:                helpers.RoundMoney(refundDue),
		DueDate:                  dueDate,
		CalculatedAt:             time.Now(),
	}, nil
}

// AdvanceSchedule derives the quarterly advance payments for a year:
// the greater of the current-year estimate or the uplifted prior-year
// tax, split into four equal installments on the category's due
// months.
func (s *CorporateTaxService) AdvanceSchedule(p params.AdvanceScheduleParams) (*responses.AdvanceScheduleResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid advance schedule params: %w", err)
	}
	if !p.Category.Valid() {
		return nil, invalidField("category", "unknown business category %q", string(p.Category))
	}

	corp := s.policy.Corporate
	upliftedPrior := p.PriorYearTax * corp.AdvancePriorYearFactor

	base := p.EstimatedTax
	basedOnPrior := upliftedPrior > base
	if basedOnPrior {
		base = upliftedPrior
	}

	installmentAmount := helpers.RoundMoney(base / 4)
	months := corp.AdvanceMonthsFor(p.Category)

	installments := make([]responses.AdvanceInstallment, 0, len(months))
	for i, month := range months {
		installments = append(installments, responses.AdvanceInstallment{
			Quarter: i + 1,
			DueDate: time.Date(p.Year, time.Month(month), 15, 0, 0, 0, 0, time.UTC),
			Amount:  installmentAmount,
		})
	}

	return &responses.AdvanceScheduleResult{
		AnnualBase:   helpers.RoundMoney(base),
		BasedOnPrior: basedOnPrior,
		Installments: installments,
		CalculatedAt: time.Now(),
	}, nil
}

// CapitalGains computes tax on an asset disposal, with the long-hold
// exemption for non-mining categories.
func (s *CorporateTaxService) CapitalGains(p params.CapitalGainsParams) (*responses.CapitalGainsResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid capital gains params: %w", err)
	}
	if !p.Category.Valid() {
		return nil, invalidField("category", "unknown business category %q", string(p.Category))
	}
	if !p.AcquisitionDate.Before(p.DisposalDate) {
		return nil, invalidField("acquisition_date", "acquisition date %s is not before disposal date %s",
			p.AcquisitionDate.Format(time.DateOnly), p.DisposalDate.Format(time.DateOnly))
	}

	corp := s.policy.Corporate
	gain := helpers.ClampNonNegative(p.DisposalProceeds - p.AcquisitionCost)
	holdingYears := p.DisposalDate.Sub(p.AcquisitionDate).Hours() / hoursPerYear

	var exempt float64
	if holdingYears > float64(corp.CapitalGainsExemptYears) && p.Category != constants.CategoryMining {
		exempt = gain * corp.CapitalGainsExemptShare
	}
	taxable := gain - exempt

	return &responses.CapitalGainsResult{
		Gain:          helpers.RoundMoney(gain),
		HoldingYears:  helpers.RoundRate(holdingYears),
		ExemptPortion: helpers.RoundMoney(exempt),
		TaxableGain:   helpers.RoundMoney(taxable),
		RateApplied:   corp.CapitalGainsRate,
		Tax:           helpers.RoundMoney(taxable * corp.CapitalGainsRate),
		CalculatedAt:  time.Now(),
	}, nil
}
