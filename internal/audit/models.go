// Package audit captures the assessment platform's audit trail. Compliance
// events are fail-closed and persisted synchronously; operational events are
// fail-open and drained by a background worker.
package audit

import (
	"time"

	"github.com/google/uuid"

	"orbita/pkg/domain"
)

// Action identifies what happened.
type Action string

const (
	ActionAssessmentCreated    Action = "assessment_created"
	ActionAssessmentOutOfScope Action = "assessment_out_of_scope"
	ActionStatusUpdated        Action = "status_updated"
	ActionReportGenerated      Action = "report_generated"
	ActionProfileAggregated    Action = "unified_profile_built"
)

// Category partitions the trail by retention and delivery guarantees.
type Category string

const (
	// CategoryCompliance events are the regulatory record. Losing one is an
	// operation failure.
	CategoryCompliance Category = "compliance"
	// CategoryOperations events are best-effort telemetry.
	CategoryOperations Category = "operations"
)

// actionCategories is the source of truth for event routing.
var actionCategories = map[Action]Category{
	ActionAssessmentCreated:    CategoryCompliance,
	ActionAssessmentOutOfScope: CategoryCompliance,
	ActionStatusUpdated:        CategoryCompliance,
	ActionReportGenerated:      CategoryOperations,
	ActionProfileAggregated:    CategoryOperations,
}

// Category resolves an action to its trail category. Unknown actions land in
// operations so an unmapped action cannot block business operations.
func (a Action) Category() Category {
	if c, ok := actionCategories[a]; ok {
		return c
	}
	return CategoryOperations
}

// Event is one audit trail entry. Keep it transport-agnostic so stores and
// sinks can fan out.
type Event struct {
	ID           uuid.UUID           `json:"id"`
	Timestamp    time.Time           `json:"timestamp"`
	AssessmentID domain.AssessmentID `json:"assessment_id"`
	Framework    domain.Framework    `json:"framework,omitempty"`
	Action       Action              `json:"action"`
	Actor        string              `json:"actor,omitempty"`
	Detail       string              `json:"detail,omitempty"`
	RequestID    string              `json:"request_id,omitempty"`
}
