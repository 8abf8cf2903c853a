package domain

import dErrors "orbita/pkg/domain-errors"

// ComplianceStatus is the recorded state of one requirement within an
// assessment. Every applicable requirement has exactly one current status;
// requirements without an explicit record default to StatusNotStarted.
type ComplianceStatus string

const (
	StatusCompliant     ComplianceStatus = "compliant"
	StatusPartial       ComplianceStatus = "partial"
	StatusNonCompliant  ComplianceStatus = "non_compliant"
	StatusNotApplicable ComplianceStatus = "not_applicable"
	StatusNotStarted    ComplianceStatus = "not_started"
)

var validComplianceStatuses = map[ComplianceStatus]bool{
	StatusCompliant:     true,
	StatusPartial:       true,
	StatusNonCompliant:  true,
	StatusNotApplicable: true,
	StatusNotStarted:    true,
}

// ParseComplianceStatus constructs a ComplianceStatus from external input.
func ParseComplianceStatus(s string) (ComplianceStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "compliance status cannot be empty")
	}
	cs := ComplianceStatus(s)
	if !validComplianceStatuses[cs] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown compliance status %q", s)
	}
	return cs, nil
}

func (s ComplianceStatus) IsValid() bool {
	return validComplianceStatuses[s]
}

// Open reports whether the requirement still needs work. Not-applicable
// requirements are excluded from scoring entirely, so they do not count as
// open.
func (s ComplianceStatus) Open() bool {
	return s == StatusPartial || s == StatusNonCompliant || s == StatusNotStarted
}

func (s ComplianceStatus) String() string {
	return string(s)
}
