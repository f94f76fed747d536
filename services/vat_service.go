package services

import (
	"fmt"
	"math"
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

// VATService computes value-added tax per transaction and aggregates
// transactions into period returns with input/output netting.
type VATService struct {
	policy   *config.TaxYearPolicy
	logger   *zap.Logger
	validate *validator.Validate
}

// NewVATService creates a new VAT service
func NewVATService(policy *config.TaxYearPolicy) *VATService {
	return &VATService{
		policy:   policy,
		logger:   logger.Log,
		validate: validator.New(),
	}
}

// Calculate computes tax for one transaction. Tax-inclusive amounts
// are back-calculated, tax-exclusive amounts forward-calculated.
func (s *VATService) Calculate(p params.VATParams) (*responses.VATResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid vat params: %w", err)
	}
	if !p.Category.Valid() {
		return nil, invalidField("category", "unknown vat category %q", string(p.Category))
	}
	if !p.Direction.Valid() {
		return nil, invalidField("direction", "unknown transaction direction %q", string(p.Direction))
	}

	rate := s.rateFor(p.Category, p.CustomRate)

	var net, vat, gross float64
	if p.IncludesVAT {
		gross = p.Amount
		net = gross / (1 + rate)
		vat = gross - net
	} else {
		net = p.Amount
		vat = net * rate
		gross = net + vat
	}

	monthlyThreshold := s.policy.VAT.RegistrationThreshold / constants.MonthsPerYear

	return &responses.VATResult{
		NetAmount:            helpers.RoundMoney(net),
		VATAmount:            helpers.RoundMoney(vat),
		GrossAmount:          helpers.RoundMoney(gross),
		RateApplied:          rate,
		Category:             p.Category,
		RegistrationRequired: net >= monthlyThreshold,
		CalculatedAt:         time.Now(),
	}, nil
}

// PeriodReturn aggregates a window of transactions into a return.
// Output tax comes from sales and exports, input tax from purchases
// and imports; net tax folds in any balance carried from the prior
// period. A negative net tax signals a refund position.
func (s *VATService) PeriodReturn(p params.VATReturnParams) (*responses.VATReturnResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid vat return params: %w", err)
	}
	if !p.PeriodStart.Before(p.PeriodEnd) {
		return nil, invalidField("period_start", "period start %s is not before period end %s",
			p.PeriodStart.Format(time.DateOnly), p.PeriodEnd.Format(time.DateOnly))
	}

	s.logger.Info("building vat period return",
		zap.String("business_id", p.BusinessID.String()),
		zap.Time("period_start", p.PeriodStart),
		zap.Time("period_end", p.PeriodEnd),
		zap.Int("transactions", len(p.Transactions)))

	var outputTax, inputTax float64
	count := 0
	for _, txn := range p.Transactions {
		if txn.Date.Before(p.PeriodStart) || txn.Date.After(p.PeriodEnd) {
			continue
		}
		res, err := s.Calculate(params.VATParams{
			Amount:      txn.Amount,
			Category:    txn.Category,
			Direction:   txn.Direction,
			IncludesVAT: txn.IncludesVAT,
		})
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", txn.ID, err)
		}
		count++
		switch {
		case txn.Direction.IsOutput():
			outputTax += res.VATAmount
		case txn.Direction.IsInput():
			inputTax += res.VATAmount
		}
	}

	netTax := outputTax - inputTax + p.CarriedBalance
	dueDate := s.returnDueDate(p.PeriodEnd)

	effective := p.ReferenceDate
	if p.FiledDate != nil {
		effective = *p.FiledDate
	}
	monthsLate := monthsOverdue(dueDate, effective)

	var penalty float64
	if monthsLate > 0 && netTax > 0 {
		penalty = netTax * s.policy.VAT.LatePenaltyRate * float64(monthsLate)
	}

	netTax = helpers.RoundMoney(netTax)
	penalty = helpers.RoundMoney(penalty)

	return &responses.VATReturnResult{
		BusinessID:       p.BusinessID,
		PeriodStart:      p.PeriodStart,
		PeriodEnd:        p.PeriodEnd,
		TransactionCount: count,
		OutputTax:        helpers.RoundMoney(outputTax),
		InputTax:         helpers.RoundMoney(inputTax),
		CarriedBalance:   helpers.RoundMoney(p.CarriedBalance),
		NetTax:           netTax,
		RefundDue:        netTax < 0,
		DueDate:          dueDate,
		MonthsLate:       monthsLate,
		Penalty:          penalty,
		TotalPayable:     helpers.RoundMoney(netTax + penalty),
		CalculatedAt:     time.Now(),
	}, nil
}

// PartialExemption reduces recoverable input tax by the exempt-supply
// ratio, unless the non-recoverable amount falls under the de-minimis
// limit, in which case input tax is fully recoverable.
func (s *VATService) PartialExemption(p params.PartialExemptionParams) (*responses.PartialExemptionResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid partial exemption params: %w", err)
	}
	if p.ExemptSupplies > p.TotalSupplies {
		return nil, invalidField("exempt_supplies", "exempt supplies %.2f exceed total supplies %.2f",
			p.ExemptSupplies, p.TotalSupplies)
	}

	var ratio float64
	if p.TotalSupplies > 0 {
		ratio = p.ExemptSupplies / p.TotalSupplies
	}

	nonRecoverable := p.InputTax * ratio
	recoverable := p.InputTax - nonRecoverable
	deMinimis := nonRecoverable > 0 && nonRecoverable <= s.policy.VAT.MonthlyDeMinimis
	if deMinimis {
		recoverable = p.InputTax
		nonRecoverable = 0
	}

	return &responses.PartialExemptionResult{
		InputTax:         helpers.RoundMoney(p.InputTax),
		ExemptRatio:      helpers.RoundRate(ratio),
		NonRecoverable:   helpers.RoundMoney(nonRecoverable),
		Recoverable:      helpers.RoundMoney(recoverable),
		DeMinimisApplied: deMinimis,
		CalculatedAt:     time.Now(),
	}, nil
}

func (s *VATService) rateFor(category constants.VATCategory, custom *float64) float64 {
	if category != constants.VATCategoryStandard {
		return 0
	}
	if custom != nil {
		return *custom
	}
	return s.policy.VAT.StandardRate
}

// returnDueDate is the fixed due day of the month following period end.
func (s *VATService) returnDueDate(periodEnd time.Time) time.Time {
	return time.Date(periodEnd.Year(), periodEnd.Month()+1, s.policy.VAT.ReturnDueDay,
		0, 0, 0, 0, periodEnd.Location())
}

// monthsOverdue counts started 30-day blocks past the due date, zero
// when the effective date is on or before it.
func monthsOverdue(dueDate, effective time.Time) int {
	if !effective.After(dueDate) {
		return 0
	}
	days := effective.Sub(dueDate).Hours() / 24
	return int(math.Ceil(days / 30))
}
