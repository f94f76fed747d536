package services

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kaietech/revenue-engine/config"
	"github.com/kaietech/revenue-engine/helpers"
	"github.com/kaietech/revenue-engine/logger"
	"github.com/kaietech/revenue-engine/types/api/params"
	"github.com/kaietech/revenue-engine/types/api/responses"
)

// WithholdingService computes withholding tax per payment, monthly
// returns per payee, and a historical remittance compliance score.
type WithholdingService struct {
	policy   *config.TaxYearPolicy
	logger   *zap.Logger
	validate *validator.Validate
}

// NewWithholdingService creates a new withholding service
func NewWithholdingService(policy *config.TaxYearPolicy) *WithholdingService {
	return &WithholdingService{
		policy:   policy,
		logger:   logger.Log,
		validate: validator.New(),
	}
}

// Calculate computes the tax withheld on one payment. Payments below
// the minimum threshold or explicitly exempt are not subject to
// withholding.
func (s *WithholdingService) Calculate(p params.WithholdingParams) (*responses.WithholdingResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid withholding params: %w", err)
	}
	if !p.PaymentType.Valid() {
		return nil, invalidField("payment_type", "unknown payment type %q", string(p.PaymentType))
	}
	if !p.PayeeCategory.Valid() {
		return nil, invalidField("payee_category", "unknown payee category %q", string(p.PayeeCategory))
	}

	wht := s.policy.Withholding

	result := &responses.WithholdingResult{
		GrossAmount:  helpers.RoundMoney(p.Amount),
		PaymentType:  p.PaymentType,
		NonResident:  p.PayeeCategory.NonResident(),
		NetPayment:   helpers.RoundMoney(p.Amount),
		CalculatedAt: time.Now(),
	}

	if p.Exempt {
		result.ExemptReason = "payment marked exempt"
		return result, nil
	}
	if p.Amount < wht.MinimumPayment {
		result.ExemptReason = fmt.Sprintf("payment below minimum threshold of %.2f", wht.MinimumPayment)
		return result, nil
	}

	baseRate, err := wht.BaseRateFor(p.PaymentType)
	if err != nil {
		return nil, err
	}

	rate := baseRate
	if result.NonResident {
		rate *= wht.NonResidentMultiplier
		if rate > wht.MaximumRate {
			rate = wht.MaximumRate
		}
	}

	reduction := 0.0
	if p.TreatyCountry != "" {
		reduction = wht.TreatyReductionFor(p.TreatyCountry, p.PaymentType)
	}
	rate = helpers.ClampNonNegative(rate - reduction)

	withheld := helpers.RoundMoney(p.Amount * rate)

	result.Subject = true
	result.BaseRate = baseRate
	result.TreatyReduction = reduction
	result.EffectiveRate = helpers.RoundRate(rate)
	result.TaxWithheld = withheld
	result.NetPayment = helpers.RoundMoney(p.Amount - withheld)
	return result, nil
}

// MonthlyReturn aggregates one month's payments into a return grouped
// per payee, with the late-remittance penalty past the fixed due day
// of the following month.
func (s *WithholdingService) MonthlyReturn(p params.MonthlyWithholdingReturnParams) (*responses.WithholdingMonthlyReturn, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid monthly withholding return params: %w", err)
	}

	s.logger.Info("building monthly withholding return",
		zap.Int("year", p.Year),
		zap.Int("month", int(p.Month)),
		zap.Int("payments", len(p.Payments)))

	// Group per payee, preserving first-seen order for stable output.
	index := make(map[string]int)
	var payees []responses.PayeeWithholdingSummary
	var totalGross, totalWithheld float64

	for _, payment := range p.Payments {
		res, err := s.Calculate(params.WithholdingParams{
			Amount:        payment.Amount,
			PaymentType:   payment.PaymentType,
			PayeeCategory: payment.PayeeCategory,
			TreatyCountry: payment.TreatyCountry,
			Exempt:        payment.Exempt,
		})
		if err != nil {
			return nil, fmt.Errorf("payment %s: %w", payment.ID, err)
		}

		i, ok := index[payment.PayeeID]
		if !ok {
			i = len(payees)
			index[payment.PayeeID] = i
			payees = append(payees, responses.PayeeWithholdingSummary{
				PayeeID:   payment.PayeeID,
				PayeeName: payment.PayeeName,
			})
		}
		payees[i].PaymentCount++
		payees[i].GrossAmount = helpers.RoundMoney(payees[i].GrossAmount + res.GrossAmount)
		payees[i].TaxWithheld = helpers.RoundMoney(payees[i].TaxWithheld + res.TaxWithheld)
		payees[i].NetAmount = helpers.RoundMoney(payees[i].NetAmount + res.NetPayment)

		totalGross += res.GrossAmount
		totalWithheld += res.TaxWithheld
	}

	dueDate := s.remittanceDueDate(p.Year, p.Month)
	effective := p.ReferenceDate
	if p.FiledDate != nil {
		effective = *p.FiledDate
	}
	monthsLate := monthsOverdue(dueDate, effective)

	var penalty float64
	if monthsLate > 0 {
		penalty = totalWithheld * s.policy.Withholding.LatePenaltyRate * float64(monthsLate)
	}

	totalWithheld = helpers.RoundMoney(totalWithheld)
	penalty = helpers.RoundMoney(penalty)

	return &responses.WithholdingMonthlyReturn{
		Year:          p.Year,
		Month:         p.Month,
		DueDate:       dueDate,
		PayeeCount:    len(payees),
		TotalGross:    helpers.RoundMoney(totalGross),
		TotalWithheld: totalWithheld,
		TotalNet:      helpers.RoundMoney(totalGross - totalWithheld),
		Payees:        payees,
		MonthsLate:    monthsLate,
		Penalty:       penalty,
		TotalDue:      helpers.RoundMoney(totalWithheld + penalty),
		CalculatedAt:  time.Now(),
	}, nil
}

// ComplianceCheck scans historical monthly remittance records, flags
// months past due and still unpaid, and scores the payer 0-100.
func (s *WithholdingService) ComplianceCheck(p params.WithholdingComplianceParams) (*responses.WithholdingComplianceResult, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid withholding compliance params: %w", err)
	}

	result := &responses.WithholdingComplianceResult{
		TotalMonths:  len(p.Records),
		Score:        100,
		CalculatedAt: time.Now(),
	}

	for _, record := range p.Records {
		dueDate := s.remittanceDueDate(record.Year, record.Month)
		if !p.ReferenceDate.After(dueDate) || record.PaidDate != nil {
			continue
		}
		result.OverdueMonths++
		result.Overdue = append(result.Overdue, responses.OverdueWithholdingMonth{
			Year:        record.Year,
			Month:       record.Month,
			DueDate:     dueDate,
			Outstanding: helpers.RoundMoney(record.WithheldAmount),
			DaysOverdue: int(p.ReferenceDate.Sub(dueDate).Hours() / 24),
		})
	}

	if result.TotalMonths > 0 {
		result.Score = helpers.RoundMoney(100 * (1 - float64(result.OverdueMonths)/float64(result.TotalMonths)))
	}
	return result, nil
}

// remittanceDueDate is the fixed due day of the month following the
// remittance month.
func (s *WithholdingService) remittanceDueDate(year int, month time.Month) time.Time {
	return time.Date(year, month+1, s.policy.Withholding.ReturnDueDay, 0, 0, 0, 0, time.UTC)
}
