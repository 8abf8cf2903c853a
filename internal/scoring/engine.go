package scoring

import (
	"sort"

	"orbita/internal/catalog"
	"orbita/pkg/domain"
)

// StatusSet maps requirement IDs to their recorded compliance status.
// Missing entries default to not_started, per the status lifecycle rule.
type StatusSet map[domain.RequirementID]domain.ComplianceStatus

// Get returns the current status for id, defaulting to not_started.
func (s StatusSet) Get(id domain.RequirementID) domain.ComplianceStatus {
	if st, ok := s[id]; ok {
		return st
	}
	return domain.StatusNotStarted
}

// CategoryScore is one row of the weighted breakdown.
type CategoryScore struct {
	Category      catalog.DisplayCategory `json:"category"`
	Applicable    int                     `json:"applicable"`
	Compliant     int                     `json:"compliant"`
	Score         float64                 `json:"score"`
	Weight        float64                 `json:"weight"`
	WeightedScore float64                 `json:"weighted_score"`
}

// AuthorityScore is the unweighted per-authority view used by national
// framework reports.
type AuthorityScore struct {
	Authority  string  `json:"authority"`
	Applicable int     `json:"applicable"`
	Compliant  int     `json:"compliant"`
	Score      float64 `json:"score"`
}

// Result is the scoring outcome for one framework evaluation.
type Result struct {
	Framework domain.Framework       `json:"framework"`
	Overall   float64                `json:"overall"`
	Grade     domain.Grade           `json:"grade"`
	State     domain.ComplianceState `json:"state"`
	Risk      domain.RiskLevel       `json:"risk"`
	Breakdown []CategoryScore        `json:"breakdown"`

	MandatoryApplicable int `json:"mandatory_applicable"`
	MandatoryCompliant  int `json:"mandatory_compliant"`
}

// Evaluate scores the applicable requirements against their statuses using
// the framework's weight table. It is a pure function: same inputs, same
// result.
//
// Per-category score is compliant/applicable × 100, defined as 0 when the
// category has no applicable requirement (never NaN). Requirements marked
// not_applicable are excluded from their category's applicable count.
func Evaluate(framework domain.Framework, reqs []catalog.ApplicableRequirement, statuses StatusSet, weights Weights) Result {
	type tally struct{ applicable, compliant int }
	byCategory := map[catalog.DisplayCategory]*tally{}
	for c := range weights {
		byCategory[c] = &tally{}
	}

	res := Result{Framework: framework}
	criticalOpen := false

	for _, r := range reqs {
		st := statuses.Get(r.ID)
		if st == domain.StatusNotApplicable {
			continue
		}

		if r.Mandatory {
			res.MandatoryApplicable++
			if st == domain.StatusCompliant {
				res.MandatoryCompliant++
			}
			if st.Open() && r.Severity == domain.SeverityCritical {
				criticalOpen = true
			}
		}

		t, weighted := byCategory[r.DisplayCategory]
		if !weighted {
			// Unweighted categories (informational) do not score.
			continue
		}
		t.applicable++
		if st == domain.StatusCompliant {
			t.compliant++
		}
	}

	// Deterministic breakdown order: canonical category order first, then
	// anything extra a custom weight table declares.
	categories := orderedCategories(weights)
	overall := 0.0
	for _, c := range categories {
		t := byCategory[c]
		score := 0.0
		if t.applicable > 0 {
			score = float64(t.compliant) / float64(t.applicable) * 100
		}
		weighted := score * weights[c]
		overall += weighted
		res.Breakdown = append(res.Breakdown, CategoryScore{
			Category:      c,
			Applicable:    t.applicable,
			Compliant:     t.compliant,
			Score:         score,
			Weight:        weights[c],
			WeightedScore: weighted,
		})
	}

	res.Overall = overall
	res.Grade = gradeFor(overall)
	res.State = stateFor(overall)
	res.Risk = riskFor(res.MandatoryApplicable, res.MandatoryCompliant, criticalOpen)
	return res
}

// ByAuthority aggregates unweighted scores per supervising authority, in
// alphabetical authority order.
func ByAuthority(reqs []catalog.ApplicableRequirement, statuses StatusSet) []AuthorityScore {
	type tally struct{ applicable, compliant int }
	byAuth := map[string]*tally{}
	for _, r := range reqs {
		st := statuses.Get(r.ID)
		if st == domain.StatusNotApplicable {
			continue
		}
		t := byAuth[r.Authority]
		if t == nil {
			t = &tally{}
			byAuth[r.Authority] = t
		}
		t.applicable++
		if st == domain.StatusCompliant {
			t.compliant++
		}
	}

	auths := make([]string, 0, len(byAuth))
	for a := range byAuth {
		auths = append(auths, a)
	}
	sort.Strings(auths)

	out := make([]AuthorityScore, 0, len(auths))
	for _, a := range auths {
		t := byAuth[a]
		score := 0.0
		if t.applicable > 0 {
			score = float64(t.compliant) / float64(t.applicable) * 100
		}
		out = append(out, AuthorityScore{Authority: a, Applicable: t.applicable, Compliant: t.compliant, Score: score})
	}
	return out
}

func orderedCategories(weights Weights) []catalog.DisplayCategory {
	var out []catalog.DisplayCategory
	seen := map[catalog.DisplayCategory]bool{}
	for _, c := range catalog.DisplayCategories() {
		if _, ok := weights[c]; ok {
			out = append(out, c)
			seen[c] = true
		}
	}
	var extra []catalog.DisplayCategory
	for c := range weights {
		if !seen[c] {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Letter grade thresholds on the overall score.
func gradeFor(score float64) domain.Grade {
	switch {
	case score >= 90:
		return domain.GradeA
	case score >= 80:
		return domain.GradeB
	case score >= 70:
		return domain.GradeC
	case score >= 60:
		return domain.GradeD
	default:
		return domain.GradeF
	}
}

// Coarse state thresholds, separate from the grade scale.
func stateFor(score float64) domain.ComplianceState {
	switch {
	case score >= 90:
		return domain.StateCompliant
	case score >= 70:
		return domain.StateMostlyCompliant
	case score >= 40:
		return domain.StatePartiallyCompliant
	default:
		return domain.StateNonCompliant
	}
}

// riskFor computes risk from the mandatory-only subset, with the critical
// override: an open mandatory requirement of critical severity forces
// critical risk regardless of the aggregate, so risk is deliberately not a
// monotonic function of the score.
func riskFor(mandatoryApplicable, mandatoryCompliant int, criticalOpen bool) domain.RiskLevel {
	if criticalOpen {
		return domain.RiskCritical
	}
	if mandatoryApplicable == 0 {
		return domain.RiskLow
	}
	score := float64(mandatoryCompliant) / float64(mandatoryApplicable) * 100
	switch {
	case score >= 80:
		return domain.RiskLow
	case score >= 60:
		return domain.RiskMedium
	case score >= 30:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}
