package params

import (
	"time"

	"github.com/kaietech/revenue-engine/types/business"
)

// AssessmentParams is the single entry point input for the compliance
// obligation engine. ExistingRecords is the persisted record set the
// external storage collaborator passes in; the engine merges freshly
// generated obligations into it and re-evaluates every record as of
// AssessmentDate.
type AssessmentParams struct {
	Profile         business.BusinessProfile    `json:"profile" validate:"required"`
	ExistingRecords []business.ComplianceRecord `json:"existing_records"`
	AssessmentDate  time.Time                   `json:"assessment_date" validate:"required"`
}
