package domain

import dErrors "orbita/pkg/domain-errors"

// RiskLevel is the coarse risk outcome of a framework evaluation.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskMedium:   1,
	RiskHigh:     2,
	RiskCritical: 3,
}

// Rank orders risk levels; higher means worse. Unknown levels rank below
// RiskLow so a corrupted value can never mask a real risk.
func (r RiskLevel) Rank() int {
	if rank, ok := riskRank[r]; ok {
		return rank
	}
	return -1
}

// MaxRisk returns the worst of a and b.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

func (r RiskLevel) IsValid() bool {
	_, ok := riskRank[r]
	return ok
}

func (r RiskLevel) String() string {
	return string(r)
}

// Severity grades how serious a requirement breach is. Catalog data assigns
// one per requirement.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// ParseSeverity constructs a Severity from external input (catalog files).
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityRank[sev]; !ok {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown severity %q", s)
	}
	return sev, nil
}

// Rank orders severities; higher means more serious.
func (s Severity) Rank() int {
	if rank, ok := severityRank[s]; ok {
		return rank
	}
	return -1
}

func (s Severity) IsValid() bool {
	_, ok := severityRank[s]
	return ok
}

func (s Severity) String() string {
	return string(s)
}

// Grade is the letter grade derived from the overall score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

func (g Grade) String() string {
	return string(g)
}

// ComplianceState is the coarse overall status derived from the score, on its
// own thresholds, independent of the letter grade.
type ComplianceState string

const (
	StateCompliant          ComplianceState = "compliant"
	StateMostlyCompliant    ComplianceState = "mostly_compliant"
	StatePartiallyCompliant ComplianceState = "partially_compliant"
	StateNonCompliant       ComplianceState = "non_compliant"
)

func (s ComplianceState) String() string {
	return string(s)
}
