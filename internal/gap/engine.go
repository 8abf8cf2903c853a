package gap

import (
	"sort"

	"orbita/internal/catalog"
	"orbita/internal/scoring"
	"orbita/pkg/domain"
)

// Record is one remediation item: a mandatory requirement not yet satisfied.
type Record struct {
	RequirementID  domain.RequirementID    `json:"requirement_id"`
	Framework      domain.Framework        `json:"framework"`
	Article        string                  `json:"article"`
	Obligation     string                  `json:"obligation"`
	Category       catalog.DisplayCategory `json:"category"`
	Authority      string                  `json:"authority"`
	Status         domain.ComplianceStatus `json:"status"`
	Severity       domain.Severity         `json:"severity"`
	Priority       int                     `json:"priority"`
	Recommendation string                  `json:"recommendation"`
	Effort         string                  `json:"effort"`
}

// PriorityFunc ranks a gap; higher means more urgent. The status ordering at
// equal severity is a configurable rule (see DefaultPriority for the chosen
// default).
type PriorityFunc func(sev domain.Severity, status domain.ComplianceStatus) int

// DefaultPriority ranks severity first, then status within a severity band:
// non_compliant > not_started > partial. The partial/non_compliant ordering
// is the documented default — non-compliance is an active breach while
// partial work is underway — and callers needing the opposite can supply
// their own PriorityFunc.
func DefaultPriority(sev domain.Severity, status domain.ComplianceStatus) int {
	return sev.Rank()*4 + statusUrgency(status)
}

func statusUrgency(status domain.ComplianceStatus) int {
	switch status {
	case domain.StatusNonCompliant:
		return 3
	case domain.StatusNotStarted:
		return 2
	case domain.StatusPartial:
		return 1
	default:
		return 0
	}
}

// Option configures Analyze.
type Option func(*config)

type config struct {
	priority PriorityFunc
}

// WithPriorityFunc overrides the gap ranking rule.
func WithPriorityFunc(fn PriorityFunc) Option {
	return func(c *config) {
		c.priority = fn
	}
}

// Analyze emits a Record for every mandatory requirement whose status is
// neither compliant nor not_applicable, sorted by priority descending with a
// stable secondary order by category then authority so equal-priority gaps
// display deterministically.
func Analyze(reqs []catalog.ApplicableRequirement, statuses scoring.StatusSet, opts ...Option) []Record {
	cfg := config{priority: DefaultPriority}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out []Record
	for _, r := range reqs {
		if !r.Mandatory {
			continue
		}
		st := statuses.Get(r.ID)
		if st == domain.StatusCompliant || st == domain.StatusNotApplicable {
			continue
		}
		rem := remediationFor(r)
		out = append(out, Record{
			RequirementID:  r.ID,
			Framework:      r.Framework,
			Article:        r.Article,
			Obligation:     r.Text,
			Category:       r.DisplayCategory,
			Authority:      r.Authority,
			Status:         st,
			Severity:       r.Severity,
			Priority:       cfg.priority(r.Severity, st),
			Recommendation: rem.Recommendation,
			Effort:         rem.Effort,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Authority < out[j].Authority
	})
	return out
}

// TopN returns the first n records without disturbing the Analyze ordering.
func TopN(records []Record, n int) []Record {
	if n < 0 {
		n = 0
	}
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}
