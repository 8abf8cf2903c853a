// Package assessment orchestrates the compliance pipeline: scoping,
// applicability, classification, scoring, gap analysis, and reporting over a
// stored operator assessment.
package assessment

import (
	"time"

	appdomain "orbita/internal/domain"
	"orbita/internal/scoping"
	"orbita/pkg/domain"
)

// StatusRecord is one requirement's recorded compliance status with its
// evidence note.
type StatusRecord struct {
	Status    domain.ComplianceStatus `json:"status"`
	Note      string                  `json:"note,omitempty"`
	UpdatedBy string                  `json:"updated_by,omitempty"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// Assessment is the aggregate an operator's compliance run lives in: the
// profile snapshot, the scoping verdict, and per-requirement statuses.
// Requirement IDs are unique across frameworks, so Statuses is flat.
type Assessment struct {
	ID           domain.AssessmentID                     `json:"id"`
	OperatorName string                                  `json:"operator_name"`
	Profile      appdomain.OperatorProfile               `json:"profile"`
	Answers      scoping.Answers                         `json:"answers,omitempty"`
	Verdict      *scoping.Verdict                        `json:"verdict,omitempty"`
	Statuses     map[domain.RequirementID]StatusRecord   `json:"statuses"`
	CreatedAt    time.Time                               `json:"created_at"`
	UpdatedAt    time.Time                               `json:"updated_at"`
}

// Clone returns a deep copy so stores can hand out aggregates without
// aliasing their internal state.
func (a *Assessment) Clone() *Assessment {
	if a == nil {
		return nil
	}
	out := *a
	out.Statuses = make(map[domain.RequirementID]StatusRecord, len(a.Statuses))
	for id, rec := range a.Statuses {
		out.Statuses[id] = rec
	}
	if a.Answers != nil {
		out.Answers = make(scoping.Answers, len(a.Answers))
		for k, v := range a.Answers {
			out.Answers[k] = v
		}
	}
	if a.Verdict != nil {
		v := *a.Verdict
		out.Verdict = &v
	}
	return &out
}

// StatusOf returns the recorded status for a requirement, defaulting to
// not_started when nothing has been recorded yet.
func (a *Assessment) StatusOf(id domain.RequirementID) domain.ComplianceStatus {
	if rec, ok := a.Statuses[id]; ok {
		return rec.Status
	}
	return domain.StatusNotStarted
}
