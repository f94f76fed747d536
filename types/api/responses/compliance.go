package responses

import (
	"time"

	"github.com/google/uuid"
	"github.com/kaietech/revenue-engine/constants"
	"github.com/kaietech/revenue-engine/types/business"
)

// ComplianceAssessment is the point-in-time aggregate view over a
// business's obligation records. It is recomputed on every call and
// never stored as the source of truth; the records are.
type ComplianceAssessment struct {
	BusinessID       uuid.UUID                   `json:"business_id"`
	AssessmentDate   time.Time                   `json:"assessment_date"`
	OverallStatus    constants.ComplianceStatus  `json:"overall_status"`
	ComplianceScore  float64                     `json:"compliance_score"`
	TotalOutstanding float64                     `json:"total_outstanding"`
	OverdueCount     int                         `json:"overdue_count"`
	DelinquentCount  int                         `json:"delinquent_count"`
	UpcomingCount    int                         `json:"upcoming_count"`
	RiskLevel        constants.RiskLevel         `json:"risk_level"`
	Records          []business.ComplianceRecord `json:"records"`
	Recommendations  []string                    `json:"recommendations"`
	NextActions      []business.NextAction       `json:"next_actions"`
	CalculatedAt     time.Time                   `json:"calculated_at"`
}
