package assessment

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"orbita/internal/catalog"
	"orbita/internal/classify"
	"orbita/internal/gap"
	"orbita/internal/scoring"
	"orbita/internal/unified"
	dErrors "orbita/pkg/domain-errors"
	"orbita/pkg/domain"
)

// profileCodes extracts the catalog matching codes from the stored profile.
func profileCodes(a *Assessment) catalog.ProfileCodes {
	return catalog.ProfileCodes{
		OperatorTypes: a.Profile.OperatorTypes,
		Jurisdictions: a.Profile.Jurisdictions,
	}
}

// statusSet projects the assessment's records into the scoring engine's view.
func statusSet(a *Assessment) scoring.StatusSet {
	out := make(scoring.StatusSet, len(a.Statuses))
	for id, rec := range a.Statuses {
		out[id] = rec.Status
	}
	return out
}

// classifierFor returns the rule list for frameworks that have one. National
// licensing frameworks classify by jurisdiction alone, through applicability.
func classifierFor(f domain.Framework) (classify.RuleList, bool) {
	switch f {
	case domain.FrameworkEUSpaceAct:
		return classify.SpaceActRegime(), true
	case domain.FrameworkNIS2:
		return classify.NIS2EntityClass(), true
	default:
		return classify.RuleList{}, false
	}
}

// evaluateFramework runs the full per-framework pipeline: applicability,
// classification, scoring, gap analysis.
func (s *Service) evaluateFramework(ctx context.Context, a *Assessment, f domain.Framework) (unified.FrameworkOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.evaluateFramework",
		trace.WithAttributes(attribute.String("framework", f.String())))
	defer span.End()

	if s.metrics != nil {
		start := time.Now()
		defer func() {
			s.metrics.PipelineDuration.WithLabelValues(f.String()).Observe(time.Since(start).Seconds())
		}()
	}

	out := unified.FrameworkOutcome{Framework: f}

	cat := s.catalogs.Catalog(f)
	if cat == nil {
		return out, dErrors.Newf(dErrors.CodeNotFound, "no catalog for framework %q", f)
	}

	// The questionnaire verdict gates the EU Space Act before any catalog
	// work happens.
	if f == domain.FrameworkEUSpaceAct && a.Verdict != nil && !a.Verdict.InScope {
		out.OutOfScopeReason = a.Verdict.Reason
		return out, nil
	}

	reqs, err := catalog.Resolve(cat, profileCodes(a))
	if err != nil {
		return out, err
	}

	if rules, ok := classifierFor(f); ok {
		res := rules.Classify(a.Profile)
		out.Classification = &res
		if res.Label.OutOfScope() {
			out.OutOfScopeReason = res.Reason
			return out, nil
		}
	}

	if len(reqs) == 0 {
		out.OutOfScopeReason = "no applicable requirements for this operator profile"
		return out, nil
	}

	weights, err := scoring.DefaultWeights(f)
	if err != nil {
		return out, err
	}

	statuses := statusSet(a)
	out.InScope = true
	out.Scoring = scoring.Evaluate(f, reqs, statuses, weights)
	out.Gaps = gap.Analyze(reqs, statuses)
	out.RequirementCount = len(reqs)
	out.ApplicableIDs = make([]domain.RequirementID, len(reqs))
	for i, r := range reqs {
		out.ApplicableIDs[i] = r.ID
	}
	return out, nil
}

// applicable resolves the applicable requirement set for one framework,
// failing when the framework is out of scope for this assessment.
func (s *Service) applicable(ctx context.Context, a *Assessment, f domain.Framework) ([]catalog.ApplicableRequirement, error) {
	cat := s.catalogs.Catalog(f)
	if cat == nil {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "no catalog for framework %q", f)
	}
	return catalog.Resolve(cat, profileCodes(a))
}
