package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbita/internal/catalog"
	"orbita/pkg/domain"
)

func req(id string, cat string, mandatory bool, sev domain.Severity) catalog.ApplicableRequirement {
	return catalog.ApplicableRequirement{
		Requirement: catalog.Requirement{
			ID:        domain.RequirementID(id),
			Text:      "obligation " + id,
			Category:  cat,
			Mandatory: mandatory,
			Severity:  sev,
			Framework: domain.FrameworkEUSpaceAct,
		},
		DisplayCategory: catalog.NormalizeCategory(cat),
	}
}

func twoCategoryWeights() Weights {
	return Weights{
		catalog.CategoryAuthorization: 0.6,
		catalog.CategorySafety:        0.4,
	}
}

func TestWeights_Validate(t *testing.T) {
	require.NoError(t, twoCategoryWeights().Validate())

	t.Run("rejects sums away from one", func(t *testing.T) {
		w := Weights{catalog.CategoryAuthorization: 0.6, catalog.CategorySafety: 0.5}
		require.Error(t, w.Validate())
	})

	t.Run("rejects negative weights", func(t *testing.T) {
		w := Weights{catalog.CategoryAuthorization: 1.5, catalog.CategorySafety: -0.5}
		require.Error(t, w.Validate())
	})

	t.Run("rejects empty table", func(t *testing.T) {
		require.Error(t, Weights{}.Validate())
	})

	t.Run("every default table validates", func(t *testing.T) {
		for _, fw := range domain.Frameworks() {
			w, err := DefaultWeights(fw)
			require.NoError(t, err, "framework %s", fw)
			require.NotEmpty(t, w)
		}
	})
}

func TestEvaluate_WeightedAggregation(t *testing.T) {
	reqs := []catalog.ApplicableRequirement{
		req("a-1", "licensing", true, domain.SeverityHigh),
		req("a-2", "insurance", true, domain.SeverityMedium),
		req("s-1", "safety", true, domain.SeverityHigh),
		req("s-2", "tracking", false, domain.SeverityLow),
	}
	statuses := StatusSet{
		"a-1": domain.StatusCompliant,
		"a-2": domain.StatusNonCompliant,
		"s-1": domain.StatusCompliant,
		"s-2": domain.StatusCompliant,
	}

	res := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())

	// authorization: 1/2 = 50, weight 0.6 → 30; safety: 2/2 = 100, 0.4 → 40.
	require.Len(t, res.Breakdown, 2)
	assert.InDelta(t, 50, res.Breakdown[0].Score, 1e-9)
	assert.InDelta(t, 30, res.Breakdown[0].WeightedScore, 1e-9)
	assert.InDelta(t, 100, res.Breakdown[1].Score, 1e-9)
	assert.InDelta(t, 70, res.Overall, 1e-9)

	// Overall equals the sum of weighted scores.
	sum := 0.0
	for _, b := range res.Breakdown {
		sum += b.WeightedScore
	}
	assert.InDelta(t, res.Overall, sum, 1e-9)

	assert.Equal(t, domain.GradeC, res.Grade)
	assert.Equal(t, domain.StateMostlyCompliant, res.State)
}

// TestEvaluate_FullyCompliantMandatorySet is the perfect-operator scenario:
// everything compliant scores 100, grade A, risk low.
func TestEvaluate_FullyCompliantMandatorySet(t *testing.T) {
	reqs := []catalog.ApplicableRequirement{
		req("a-1", "licensing", true, domain.SeverityCritical),
		req("s-1", "safety", true, domain.SeverityCritical),
	}
	statuses := StatusSet{"a-1": domain.StatusCompliant, "s-1": domain.StatusCompliant}

	res := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())
	assert.InDelta(t, 100, res.Overall, 1e-9)
	assert.Equal(t, domain.GradeA, res.Grade)
	assert.Equal(t, domain.StateCompliant, res.State)
	assert.Equal(t, domain.RiskLow, res.Risk)
}

// TestEvaluate_EmptyCategoryScoresZero guards the division: a weighted
// category with no applicable requirement scores exactly 0, never NaN.
func TestEvaluate_EmptyCategoryScoresZero(t *testing.T) {
	reqs := []catalog.ApplicableRequirement{
		req("a-1", "licensing", true, domain.SeverityHigh),
	}
	statuses := StatusSet{"a-1": domain.StatusCompliant}

	res := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())

	require.Len(t, res.Breakdown, 2)
	safety := res.Breakdown[1]
	assert.Equal(t, catalog.CategorySafety, safety.Category)
	assert.Zero(t, safety.Applicable)
	assert.Equal(t, 0.0, safety.Score)
	assert.False(t, res.Overall != res.Overall, "overall must not be NaN")
	assert.InDelta(t, 60, res.Overall, 1e-9)
}

func TestEvaluate_NotApplicableExcluded(t *testing.T) {
	reqs := []catalog.ApplicableRequirement{
		req("a-1", "licensing", true, domain.SeverityHigh),
		req("a-2", "licensing", true, domain.SeverityHigh),
	}
	statuses := StatusSet{
		"a-1": domain.StatusCompliant,
		"a-2": domain.StatusNotApplicable,
	}

	res := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())
	assert.Equal(t, 1, res.Breakdown[0].Applicable)
	assert.InDelta(t, 100, res.Breakdown[0].Score, 1e-9)
	assert.Equal(t, 1, res.MandatoryApplicable)
}

func TestEvaluate_MissingStatusDefaultsToNotStarted(t *testing.T) {
	reqs := []catalog.ApplicableRequirement{
		req("a-1", "licensing", true, domain.SeverityMedium),
	}

	res := Evaluate(domain.FrameworkEUSpaceAct, reqs, StatusSet{}, twoCategoryWeights())
	assert.Equal(t, 1, res.Breakdown[0].Applicable)
	assert.Zero(t, res.Breakdown[0].Compliant)
}

// TestEvaluate_CriticalOverride verifies risk is not monotonic in the score:
// one open critical mandatory requirement forces critical risk even at a high
// aggregate.
func TestEvaluate_CriticalOverride(t *testing.T) {
	reqs := []catalog.ApplicableRequirement{
		req("a-1", "licensing", true, domain.SeverityCritical),
		req("a-2", "licensing", true, domain.SeverityLow),
		req("a-3", "licensing", true, domain.SeverityLow),
		req("a-4", "licensing", true, domain.SeverityLow),
		req("a-5", "licensing", true, domain.SeverityLow),
		req("s-1", "safety", true, domain.SeverityLow),
		req("s-2", "safety", true, domain.SeverityLow),
		req("s-3", "safety", true, domain.SeverityLow),
		req("s-4", "safety", true, domain.SeverityLow),
		req("s-5", "safety", true, domain.SeverityLow),
	}
	statuses := StatusSet{}
	for _, r := range reqs {
		statuses[r.ID] = domain.StatusCompliant
	}
	statuses["a-1"] = domain.StatusPartial // open, critical severity

	res := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())
	assert.Greater(t, res.Overall, 80.0)
	assert.Equal(t, domain.RiskCritical, res.Risk)

	t.Run("same score without critical severity is low risk", func(t *testing.T) {
		statuses["a-1"] = domain.StatusCompliant
		statuses["a-2"] = domain.StatusPartial // open, but low severity
		res := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())
		assert.Equal(t, domain.RiskLow, res.Risk)
	})
}

func TestEvaluate_Idempotent(t *testing.T) {
	reqs := []catalog.ApplicableRequirement{
		req("a-1", "licensing", true, domain.SeverityHigh),
		req("s-1", "safety", false, domain.SeverityLow),
	}
	statuses := StatusSet{"a-1": domain.StatusPartial}

	first := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())
	second := Evaluate(domain.FrameworkEUSpaceAct, reqs, statuses, twoCategoryWeights())
	assert.Equal(t, first, second)
}

func TestByAuthority(t *testing.T) {
	a := req("a-1", "licensing", true, domain.SeverityHigh)
	a.Authority = "cnes"
	b := req("a-2", "licensing", true, domain.SeverityHigh)
	b.Authority = "caa"
	c := req("a-3", "licensing", true, domain.SeverityHigh)
	c.Authority = "cnes"

	statuses := StatusSet{"a-1": domain.StatusCompliant, "a-2": domain.StatusNonCompliant}

	scores := ByAuthority([]catalog.ApplicableRequirement{a, b, c}, statuses)
	require.Len(t, scores, 2)
	assert.Equal(t, "caa", scores[0].Authority)
	assert.Zero(t, scores[0].Score)
	assert.Equal(t, "cnes", scores[1].Authority)
	assert.InDelta(t, 50, scores[1].Score, 1e-9)
}
