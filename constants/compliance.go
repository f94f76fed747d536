package constants

// ComplianceStatus is the state of a single obligation record, and the
// rolled-up state of a business when used in an assessment.
type ComplianceStatus string

const (
	StatusCompliant   ComplianceStatus = "compliant"
	StatusUnderReview ComplianceStatus = "under_review"
	StatusOverdue     ComplianceStatus = "overdue"
	StatusDelinquent  ComplianceStatus = "delinquent"
)

func (s ComplianceStatus) Valid() bool {
	switch s {
	case StatusCompliant, StatusUnderReview, StatusOverdue, StatusDelinquent:
		return true
	}
	return false
}

// FilingType distinguishes what an obligation requires of the business.
type FilingType string

const (
	FilingTypeReturn           FilingType = "return"
	FilingTypePayment          FilingType = "payment"
	FilingTypeReturnAndPayment FilingType = "return_and_payment"
)

func (f FilingType) Valid() bool {
	switch f {
	case FilingTypeReturn, FilingTypePayment, FilingTypeReturnAndPayment:
		return true
	}
	return false
}

// RiskLevel is the four-tier enforcement risk classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Priority orders next actions, lower is more urgent.
type Priority int

const (
	PriorityUrgent Priority = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
)
