// Package unified aggregates per-framework assessment outcomes into a single
// cross-framework compliance profile.
package unified

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"orbita/internal/classify"
	"orbita/internal/gap"
	"orbita/internal/scoring"
	dErrors "orbita/pkg/domain-errors"
	"orbita/pkg/domain"
	pstrings "orbita/pkg/platform/strings"
)

// maxImmediateActions caps the merged action list on the unified profile.
const maxImmediateActions = 5

// FrameworkOutcome is one framework's contribution to the unified profile.
// An out-of-scope framework carries only its reason.
type FrameworkOutcome struct {
	Framework        domain.Framework `json:"framework"`
	InScope          bool             `json:"in_scope"`
	OutOfScopeReason string           `json:"out_of_scope_reason,omitempty"`
	Classification   *classify.Result       `json:"classification,omitempty"`
	Scoring          scoring.Result         `json:"scoring,omitempty"`
	Gaps             []gap.Record           `json:"gaps,omitempty"`
	ApplicableIDs    []domain.RequirementID `json:"applicable_ids,omitempty"`
	RequirementCount int                    `json:"requirement_count"`
}

// Summary is the unified cross-framework profile.
type Summary struct {
	Outcomes          []FrameworkOutcome `json:"outcomes"`
	TotalRequirements int                `json:"total_requirements"`
	OverallRisk       domain.RiskLevel   `json:"overall_risk"`
	ImmediateActions  []string           `json:"immediate_actions"`
	Overlap           classify.Overlap   `json:"overlap"`
}

// EvaluateFunc runs the full assessment pipeline for one framework.
type EvaluateFunc func(ctx context.Context, f domain.Framework) (FrameworkOutcome, error)

// Aggregate evaluates every framework concurrently and merges the outcomes.
// Output order follows the canonical framework order regardless of
// completion order. A single framework failure fails the whole aggregation.
func Aggregate(ctx context.Context, frameworks []domain.Framework, eval EvaluateFunc) (*Summary, error) {
	if len(frameworks) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "unified profile requires at least one framework")
	}

	outcomes := make([]FrameworkOutcome, len(frameworks))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range frameworks {
		g.Go(func() error {
			out, err := eval(ctx, f)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeOf(err), "evaluate "+f.String())
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(outcomes), nil
}

func merge(outcomes []FrameworkOutcome) *Summary {
	sum := &Summary{Outcomes: outcomes, OverallRisk: domain.RiskLow}

	allGaps := make([]gap.Record, 0)
	for _, out := range outcomes {
		if !out.InScope {
			continue
		}
		sum.TotalRequirements += out.RequirementCount
		sum.OverallRisk = domain.MaxRisk(sum.OverallRisk, out.Scoring.Risk)
		allGaps = append(allGaps, out.Gaps...)
	}
	sum.ImmediateActions = immediateActions(allGaps)
	sum.Overlap = frameworkOverlap(outcomes)
	return sum
}

// immediateActions merges gap recommendations across frameworks by priority,
// deduplicated, capped at maxImmediateActions.
func immediateActions(gaps []gap.Record) []string {
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Priority > gaps[j].Priority })

	recs := make([]string, len(gaps))
	for i, g := range gaps {
		recs[i] = g.Recommendation
	}
	out := pstrings.DedupeAndTrim(recs)
	if len(out) > maxImmediateActions {
		out = out[:maxImmediateActions]
	}
	return out
}

// frameworkOverlap reports Space Act / NIS2 requirement overlap when both
// frameworks are in scope, so duplicated obligations are assessed once.
func frameworkOverlap(outcomes []FrameworkOutcome) classify.Overlap {
	var spaceAct, nis2 *FrameworkOutcome
	for i := range outcomes {
		switch outcomes[i].Framework {
		case domain.FrameworkEUSpaceAct:
			spaceAct = &outcomes[i]
		case domain.FrameworkNIS2:
			nis2 = &outcomes[i]
		}
	}
	if spaceAct == nil || nis2 == nil || !spaceAct.InScope || !nis2.InScope {
		return classify.Overlap{}
	}
	return classify.SpaceActNIS2Overlap(spaceAct.ApplicableIDs, nis2.ApplicableIDs)
}
