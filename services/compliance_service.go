package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kaietech/revenue-engine/config"
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/helpers"
	"github.com/kaietech/revenue-engine/logger"
	"github.com/kaietech/revenue-engine/types/api/params"
	"github.com/kaietech/revenue-engine/types/api/responses"
	"github.com/kaietech/revenue-engine/types/business"
)

const upcomingWindowDays = 30

// ComplianceService is the obligation engine: it turns a business
// profile into dated obligation records, merges them with the
// persisted history, evaluates every record's status as of an
// assessment date, and rolls the result up into an assessment. It
// owns the merge and evaluation logic but no storage; persistence is
// an external collaborator's concern.
type ComplianceService struct {
	policy   *config.TaxYearPolicy
	logger   *zap.Logger
	validate *validator.Validate
}

// NewComplianceService creates a new compliance service
func NewComplianceService(policy *config.TaxYearPolicy) *ComplianceService {
	return &ComplianceService{
		policy:   policy,
		logger:   logger.Log,
		validate: validator.New(),
	}
}

// AssessCompliance is the engine's single entry point.
func (s *ComplianceService) AssessCompliance(p params.AssessmentParams) (*responses.ComplianceAssessment, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid assessment params: %w", err)
	}
	if p.Profile.RegistrationDate.After(p.AssessmentDate) {
		return nil, invalidField("registration_date", "registration date %s is after assessment date %s",
			p.Profile.RegistrationDate.Format(time.DateOnly), p.AssessmentDate.Format(time.DateOnly))
	}

	s.logger.Info("assessing compliance",
		zap.String("business_id", p.Profile.BusinessID.String()),
		zap.Time("assessment_date", p.AssessmentDate),
		zap.Int("existing_records", len(p.ExistingRecords)))

	generated := s.generateObligations(p.Profile, p.AssessmentDate)
	records := mergeRecords(p.ExistingRecords, generated)

	for i := range records {
		requirement, err := s.policy.Compliance.RequirementByID(records[i].RequirementID)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", records[i].ID, err)
		}
		s.evaluateRecord(&records[i], requirement, p.AssessmentDate)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].DueDate.Equal(records[j].DueDate) {
			return records[i].ID < records[j].ID
		}
		return records[i].DueDate.Before(records[j].DueDate)
	})

	return s.buildAssessment(p, records), nil
}

// generateObligations enumerates the due dates every applicable
// requirement implies for the business, from the later of its
// registration date or the lookback horizon. Monthly requirements due
// in the current month are included even when the due day is still
// ahead, so the assessment can surface them as upcoming.
func (s *ComplianceService) generateObligations(profile business.BusinessProfile, asOf time.Time) []business.ComplianceRecord {
	windowStart := asOf.AddDate(0, -s.policy.Compliance.LookbackMonths, 0)
	if profile.RegistrationDate.After(windowStart) {
		windowStart = profile.RegistrationDate
	}

	var records []business.ComplianceRecord
	for _, req := range s.policy.Compliance.Requirements {
		if !requirementApplies(req, profile) {
			continue
		}
		switch req.Frequency {
		case constants.FrequencyMonthly:
			records = append(records, s.monthlyObligations(req, profile, windowStart, asOf)...)
		case constants.FrequencyAnnual:
			records = append(records, s.annualObligations(req, profile, windowStart, asOf)...)
		}
	}
	return records
}

func (s *ComplianceService) monthlyObligations(req business.ComplianceRequirement, profile business.BusinessProfile, windowStart, asOf time.Time) []business.ComplianceRecord {
	var records []business.ComplianceRecord

	cursor := time.Date(windowStart.Year(), windowStart.Month(), 1, 0, 0, 0, 0, time.UTC)
	endOfMonth := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(endOfMonth) {
		dueDate := time.Date(cursor.Year(), cursor.Month(), req.DueDay, 0, 0, 0, 0, time.UTC)
		cursor = cursor.AddDate(0, 1, 0)
		if dueDate.Before(windowStart) {
			continue
		}
		records = append(records, s.newRecord(req, profile, dueDate, asOf))
	}
	return records
}

func (s *ComplianceService) annualObligations(req business.ComplianceRequirement, profile business.BusinessProfile, windowStart, asOf time.Time) []business.ComplianceRecord {
	var records []business.ComplianceRecord

	// Calendar-year accounting periods: the filing for year Y falls
	// due at the fixed month offset into year Y+1.
	for year := windowStart.Year() - 1; year <= asOf.Year(); year++ {
		dueDate := time.Date(year+1, time.Month(req.DueMonthOffset), req.DueDay, 0, 0, 0, 0, time.UTC)
		if dueDate.Before(windowStart) || dueDate.After(asOf) {
			continue
		}
		records = append(records, s.newRecord(req, profile, dueDate, asOf))
	}
	return records
}

func (s *ComplianceService) newRecord(req business.ComplianceRequirement, profile business.BusinessProfile, dueDate, asOf time.Time) business.ComplianceRecord {
	return business.ComplianceRecord{
		ID:            recordID(req.ID, profile, dueDate),
		RequirementID: req.ID,
		BusinessID:    profile.BusinessID,
		DueDate:       dueDate,
		Status:        constants.StatusCompliant,
		LastUpdated:   asOf,
	}
}

// recordID is deterministic so regeneration on a later assessment
// produces the same identifiers and merging stays idempotent.
func recordID(requirementID string, profile business.BusinessProfile, dueDate time.Time) string {
	return fmt.Sprintf("%s-%s-%d", requirementID, profile.BusinessID, dueDate.Unix())
}

// requirementApplies keys applicability on the profile per the
// requirement's tax type.
func requirementApplies(req business.ComplianceRequirement, profile business.BusinessProfile) bool {
	if req.MinimumThreshold > 0 && profile.AnnualTurnover < req.MinimumThreshold {
		return false
	}
	switch req.TaxType {
	case constants.TaxTypePAYE, constants.TaxTypeNIS:
		return profile.EmployeeCount > 0
	case constants.TaxTypeVAT:
		return profile.VATRegistered
	case constants.TaxTypeWithholding:
		return profile.MakesContractPayments
	case constants.TaxTypeCorporate:
		return true
	default:
		return false
	}
}

// mergeRecords keeps every existing record as-is and adds only the
// generated records whose deterministic ID is not already present.
func mergeRecords(existing, generated []business.ComplianceRecord) []business.ComplianceRecord {
	seen := make(map[string]struct{}, len(existing))
	merged := make([]business.ComplianceRecord, 0, len(existing)+len(generated))
	for _, record := range existing {
		seen[record.ID] = struct{}{}
		merged = append(merged, record)
	}
	for _, record := range generated {
		if _, ok := seen[record.ID]; ok {
			continue
		}
		merged = append(merged, record)
	}
	return merged
}

// evaluateRecord applies the state machine and accruals against the
// assessment date. A satisfied record displays as compliant, but a
// late settlement keeps the penalty and interest accrued up to its
// payment date.
func (s *ComplianceService) evaluateRecord(record *business.ComplianceRecord, req business.ComplianceRequirement, asOf time.Time) {
	comp := s.policy.Compliance

	var daysOverdue int
	if record.Satisfied() {
		daysOverdue = daysBetween(record.DueDate, *record.PaidDate)
	} else {
		daysOverdue = daysBetween(record.DueDate, asOf)
	}
	// A grace period shifts the effective lateness for status and
	// accruals alike.
	if daysOverdue > 0 && req.GracePeriodDays > 0 {
		daysOverdue -= req.GracePeriodDays
		if daysOverdue < 0 {
			daysOverdue = 0
		}
	}

	switch {
	case record.Satisfied():
		record.Status = constants.StatusCompliant
	case daysOverdue > comp.DelinquencyDays:
		record.Status = constants.StatusDelinquent
	case daysOverdue > 0:
		record.Status = constants.StatusOverdue
	default:
		record.Status = constants.StatusCompliant
	}

	var penalty, interest float64
	if daysOverdue > 0 && record.Amount > 0 {
		rate := req.PenaltyRate
		if rate == 0 {
			rate = comp.LateFilingRate
		}
		blocks := math.Ceil(float64(daysOverdue) / 30)
		penalty = record.Amount * rate * blocks
		if capped := record.Amount * comp.MaximumPenaltyRate; penalty > capped {
			penalty = capped
		}
		interest = record.Amount * (comp.AnnualInterestRate / 365) * float64(daysOverdue)
	}

	record.PenaltyAmount = helpers.RoundMoney(penalty)
	record.InterestAmount = helpers.RoundMoney(interest)
	record.TotalDue = helpers.RoundMoney(record.Amount + record.PenaltyAmount + record.InterestAmount)
	record.LastUpdated = asOf
}

func daysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

func (s *ComplianceService) buildAssessment(p params.AssessmentParams, records []business.ComplianceRecord) *responses.ComplianceAssessment {
	assessment := &responses.ComplianceAssessment{
		BusinessID:      p.Profile.BusinessID,
		AssessmentDate:  p.AssessmentDate,
		ComplianceScore: 100,
		RiskLevel:       constants.RiskLow,
		OverallStatus:   constants.StatusCompliant,
		Records:         records,
		CalculatedAt:    time.Now(),
	}

	var compliantCount int
	for _, record := range records {
		switch record.Status {
		case constants.StatusCompliant:
			compliantCount++
		case constants.StatusOverdue:
			assessment.OverdueCount++
		case constants.StatusDelinquent:
			assessment.DelinquentCount++
		}
		if !record.Satisfied() {
			assessment.TotalOutstanding += record.TotalDue
			if record.DueDate.After(p.AssessmentDate) {
				assessment.UpcomingCount++
			}
		}
	}
	assessment.TotalOutstanding = helpers.RoundMoney(assessment.TotalOutstanding)

	if len(records) > 0 {
		assessment.ComplianceScore = helpers.RoundMoney(100 * float64(compliantCount) / float64(len(records)))
	}

	assessment.OverallStatus = overallStatus(assessment)
	assessment.RiskLevel = riskLevel(assessment, p.Profile.AnnualTurnover)
	assessment.Recommendations = s.recommendations(assessment)
	assessment.NextActions = s.nextActions(records, p.AssessmentDate)
	return assessment
}

func overallStatus(a *responses.ComplianceAssessment) constants.ComplianceStatus {
	switch {
	case a.DelinquentCount > 0 || a.ComplianceScore < 50:
		return constants.StatusDelinquent
	case a.OverdueCount > 0 || a.ComplianceScore < 80:
		return constants.StatusOverdue
	case a.ComplianceScore < 95:
		return constants.StatusUnderReview
	default:
		return constants.StatusCompliant
	}
}

// riskLevel folds the score, the outstanding-to-turnover ratio and the
// late-record count into four tiers.
func riskLevel(a *responses.ComplianceAssessment, annualTurnover float64) constants.RiskLevel {
	var ratio float64
	if annualTurnover > 0 {
		ratio = a.TotalOutstanding / annualTurnover
	}
	lateCount := a.OverdueCount + a.DelinquentCount

	switch {
	case a.ComplianceScore < 50 || ratio > 0.30 || lateCount > 10:
		return constants.RiskCritical
	case a.ComplianceScore < 70 || ratio > 0.15 || lateCount > 5:
		return constants.RiskHigh
	case a.ComplianceScore < 90 || ratio > 0.05 || lateCount > 0:
		return constants.RiskMedium
	default:
		return constants.RiskLow
	}
}

func (s *ComplianceService) recommendations(a *responses.ComplianceAssessment) []string {
	var recs []string
	lateCount := a.OverdueCount + a.DelinquentCount

	if a.DelinquentCount > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d obligation(s) are more than %d days past due and at risk of enforcement action",
			a.DelinquentCount, s.policy.Compliance.DelinquencyDays))
	}
	if lateCount > 0 {
		recs = append(recs, fmt.Sprintf(
			"File and pay %d overdue obligation(s) immediately to stop penalty and interest accrual", lateCount))
	}
	if a.TotalOutstanding > 0 {
		recs = append(recs, fmt.Sprintf("Settle the outstanding liability of %.2f", a.TotalOutstanding))
	}
	if a.ComplianceScore < 80 {
		recs = append(recs, "Set up filing reminders ahead of statutory due dates to rebuild the compliance score")
	}
	if len(recs) == 0 {
		recs = append(recs, "All obligations current; maintain the present filing cadence")
	}
	return recs
}

// nextActions turns late records into urgent actions and obligations
// due within the next 30 days into prioritized reminders.
func (s *ComplianceService) nextActions(records []business.ComplianceRecord, asOf time.Time) []business.NextAction {
	var actions []business.NextAction

	for _, record := range records {
		if record.Status == constants.StatusOverdue || record.Status == constants.StatusDelinquent {
			actions = append(actions, business.NextAction{
				RecordID:    record.ID,
				Description: fmt.Sprintf("File and pay %s due %s", record.RequirementID, record.DueDate.Format(time.DateOnly)),
				DueDate:     asOf,
				Priority:    constants.PriorityUrgent,
			})
			continue
		}
		if record.Satisfied() || !record.DueDate.After(asOf) {
			continue
		}
		daysRemaining := daysBetween(asOf, record.DueDate)
		if daysRemaining > upcomingWindowDays {
			continue
		}
		priority := constants.PriorityLow
		switch {
		case daysRemaining <= 7:
			priority = constants.PriorityHigh
		case daysRemaining <= 14:
			priority = constants.PriorityMedium
		}
		actions = append(actions, business.NextAction{
			RecordID:    record.ID,
			Description: fmt.Sprintf("Prepare %s due %s", record.RequirementID, record.DueDate.Format(time.DateOnly)),
			DueDate:     record.DueDate,
			Priority:    priority,
		})
	}

	sort.SliceStable(actions, func(i, j int) bool {
		if actions[i].Priority != actions[j].Priority {
			return actions[i].Priority < actions[j].Priority
		}
		return actions[i].DueDate.Before(actions[j].DueDate)
	})
	return actions
}
