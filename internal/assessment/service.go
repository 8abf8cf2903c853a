package assessment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"orbita/internal/audit"
	"orbita/internal/catalog"
	"orbita/internal/classify"
	"orbita/internal/gap"
	"orbita/internal/platform/metrics"
	"orbita/internal/report"
	"orbita/internal/scoping"
	"orbita/internal/scoring"
	"orbita/internal/unified"
	appdomain "orbita/internal/domain"
	dErrors "orbita/pkg/domain-errors"
	"orbita/pkg/domain"
	"orbita/pkg/platform/sentinel"
	"orbita/pkg/requestcontext"
)

const defaultRenderTimeout = 30 * time.Second

// Service runs the assessment pipeline over stored assessments. It keeps
// orchestration out of handlers and the engine packages pure.
type Service struct {
	store         Store
	catalogs      *catalog.Set
	auditor       *audit.Publisher
	cache         ReportCache
	renderer      report.Renderer
	renderTimeout time.Duration
	logger        *slog.Logger
	metrics       *metrics.Metrics
	tracer        trace.Tracer

	// requirements indexes every catalog entry by ID for status validation.
	requirements map[domain.RequirementID]catalog.Requirement
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithAudit wires the audit publisher. Compliance events fail the operation
// when they cannot be persisted.
func WithAudit(p *audit.Publisher) ServiceOption {
	return func(s *Service) { s.auditor = p }
}

func WithCache(c ReportCache) ServiceOption {
	return func(s *Service) { s.cache = c }
}

func WithRenderer(r report.Renderer) ServiceOption {
	return func(s *Service) { s.renderer = r }
}

func WithRenderTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.renderTimeout = d }
}

// NewService builds the pipeline service over a store and the loaded
// catalogs.
func NewService(store Store, catalogs *catalog.Set, opts ...ServiceOption) *Service {
	s := &Service{
		store:         store,
		catalogs:      catalogs,
		renderer:      report.JSONRenderer{},
		renderTimeout: defaultRenderTimeout,
		logger:        slog.Default(),
		tracer:        otel.Tracer("orbita/assessment"),
		requirements:  make(map[domain.RequirementID]catalog.Requirement),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, f := range catalogs.Frameworks() {
		_ = catalogs.Catalog(f).Walk(func(r catalog.Requirement) error {
			s.requirements[r.ID] = r
			return nil
		})
	}
	return s
}

// CreateInput is the validated input for a new assessment.
type CreateInput struct {
	OperatorName string
	Profile      appdomain.OperatorProfile
	Answers      scoping.Answers
}

// Create validates the profile, runs the scoping questionnaire when answers
// are provided, and persists the new assessment.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Assessment, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Create")
	defer span.End()

	if in.OperatorName != "" {
		in.Profile.Name = in.OperatorName
	}
	if err := in.Profile.Validate(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	a := &Assessment{
		ID:           domain.NewAssessmentID(),
		OperatorName: in.Profile.Name,
		Profile:      in.Profile,
		Answers:      in.Answers,
		Statuses:     make(map[domain.RequirementID]StatusRecord),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if in.Answers != nil {
		verdict, err := scoping.Evaluate(scoping.SpaceActQuestions(), in.Answers)
		if err != nil {
			return nil, err
		}
		a.Verdict = &verdict
	}

	if err := s.store.Create(ctx, a); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeInternal, "assessment id collision")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "create assessment")
	}

	if err := s.emit(ctx, a.ID, "", audit.ActionAssessmentCreated, "operator "+a.OperatorName); err != nil {
		return nil, err
	}
	if a.Verdict != nil && !a.Verdict.InScope {
		if s.metrics != nil {
			s.metrics.OutOfScopeVerdicts.WithLabelValues(domain.FrameworkEUSpaceAct.String()).Inc()
		}
		if err := s.emit(ctx, a.ID, domain.FrameworkEUSpaceAct, audit.ActionAssessmentOutOfScope, a.Verdict.Reason); err != nil {
			return nil, err
		}
	}
	if s.metrics != nil {
		s.metrics.AssessmentsCreated.Inc()
	}

	s.logger.InfoContext(ctx, "assessment created",
		"assessment_id", a.ID,
		"operator", a.OperatorName,
	)
	return a, nil
}

// Get loads one assessment.
func (s *Service) Get(ctx context.Context, id domain.AssessmentID) (*Assessment, error) {
	a, err := s.store.Get(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "assessment not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load assessment")
	}
	return a, nil
}

// EvaluateScoping runs the questionnaire without persisting anything.
func (s *Service) EvaluateScoping(_ context.Context, answers scoping.Answers) (scoping.Verdict, error) {
	return scoping.Evaluate(scoping.SpaceActQuestions(), answers)
}

// UpdateStatus records a compliance status for one requirement. The
// requirement must exist in a loaded catalog; stale cached reports are
// invalidated.
func (s *Service) UpdateStatus(ctx context.Context, id domain.AssessmentID, reqID domain.RequirementID, status domain.ComplianceStatus, note string) error {
	ctx, span := s.tracer.Start(ctx, "assessment.UpdateStatus")
	defer span.End()

	if !status.IsValid() {
		return dErrors.Newf(dErrors.CodeInvalidInput, "unknown compliance status %q", status)
	}
	req, known := s.requirements[reqID]
	if !known {
		return dErrors.Newf(dErrors.CodeNotFound, "unknown requirement %q", reqID)
	}

	rec := StatusRecord{
		Status:    status,
		Note:      note,
		UpdatedBy: requestcontext.Actor(ctx),
		UpdatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.SetStatus(ctx, id, reqID, rec); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "assessment not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "update status")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	if s.metrics != nil {
		s.metrics.StatusUpdates.Inc()
	}
	return s.emit(ctx, id, req.Framework, audit.ActionStatusUpdated,
		string(reqID)+" -> "+status.String())
}

// Classification classifies the assessment's operator under one framework.
func (s *Service) Classification(ctx context.Context, id domain.AssessmentID, f domain.Framework) (*classify.Result, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rules, ok := classifierFor(f)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "framework %q has no classification rules", f)
	}
	res := rules.Classify(a.Profile)
	return &res, nil
}

// ScoringView is the scoring result plus the unweighted per-authority view.
type ScoringView struct {
	scoring.Result
	Authorities []scoring.AuthorityScore `json:"authorities"`
}

// Scoring evaluates one framework's weighted score for the assessment.
func (s *Service) Scoring(ctx context.Context, id domain.AssessmentID, f domain.Framework) (*ScoringView, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.evaluateFramework(ctx, a, f)
	if err != nil {
		return nil, err
	}
	if !out.InScope {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "framework %q is out of scope for this assessment: %s", f, out.OutOfScopeReason)
	}

	reqs, err := s.applicable(ctx, a, f)
	if err != nil {
		return nil, err
	}
	return &ScoringView{
		Result:      out.Scoring,
		Authorities: scoring.ByAuthority(reqs, statusSet(a)),
	}, nil
}

// Gaps analyzes open mandatory requirements for one framework.
func (s *Service) Gaps(ctx context.Context, id domain.AssessmentID, f domain.Framework) ([]gap.Record, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.evaluateFramework(ctx, a, f)
	if err != nil {
		return nil, err
	}
	if !out.InScope {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "framework %q is out of scope for this assessment: %s", f, out.OutOfScopeReason)
	}
	return out.Gaps, nil
}

// Report assembles and renders a report. Rendered documents are cached per
// (assessment, framework, kind); a cache failure degrades to recompute.
func (s *Service) Report(ctx context.Context, id domain.AssessmentID, f domain.Framework, kind report.Kind) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Report")
	defer span.End()

	if kind == report.KindUnifiedProfile {
		return s.unifiedReport(ctx, id)
	}

	key := reportCacheKey(id, f, kind)
	if s.cache != nil {
		if doc, ok := s.cache.Get(ctx, key); ok {
			if s.metrics != nil {
				s.metrics.ReportCacheHits.Inc()
			}
			return doc, nil
		}
		if s.metrics != nil {
			s.metrics.ReportCacheMisses.Inc()
		}
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.evaluateFramework(ctx, a, f)
	if err != nil {
		return nil, err
	}
	if !out.InScope {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "framework %q is out of scope for this assessment: %s", f, out.OutOfScopeReason)
	}
	reqs, err := s.applicable(ctx, a, f)
	if err != nil {
		return nil, err
	}

	rep, err := report.Assemble(kind, report.Input{
		AssessmentID:   a.ID,
		OperatorName:   a.OperatorName,
		Framework:      f,
		GeneratedAt:    requestcontext.Now(ctx),
		Verdict:        a.Verdict,
		Classification: out.Classification,
		Scoring:        out.Scoring,
		Authorities:    scoring.ByAuthority(reqs, statusSet(a)),
		Gaps:           out.Gaps,
		Requirements:   reqs,
	})
	if err != nil {
		return nil, err
	}

	doc, err := report.RenderWithTimeout(ctx, s.renderer, rep, s.renderTimeout)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, doc, 0)
	}
	if s.metrics != nil {
		s.metrics.ReportsGenerated.WithLabelValues(kind.String()).Inc()
	}
	if err := s.emit(ctx, id, f, audit.ActionReportGenerated, kind.String()); err != nil {
		return nil, err
	}
	return doc, nil
}

// Unified evaluates every framework concurrently and merges the outcomes
// into the cross-framework profile.
func (s *Service) Unified(ctx context.Context, id domain.AssessmentID) (*unified.Summary, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Unified")
	defer span.End()

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sum, err := unified.Aggregate(ctx, s.catalogs.Frameworks(), func(ctx context.Context, f domain.Framework) (unified.FrameworkOutcome, error) {
		return s.evaluateFramework(ctx, a, f)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.UnifiedAggregations.Inc()
	}
	if err := s.emit(ctx, id, "", audit.ActionProfileAggregated, ""); err != nil {
		return nil, err
	}
	return sum, nil
}

func (s *Service) unifiedReport(ctx context.Context, id domain.AssessmentID) ([]byte, error) {
	key := reportCacheKey(id, "", report.KindUnifiedProfile)
	if s.cache != nil {
		if doc, ok := s.cache.Get(ctx, key); ok {
			if s.metrics != nil {
				s.metrics.ReportCacheHits.Inc()
			}
			return doc, nil
		}
		if s.metrics != nil {
			s.metrics.ReportCacheMisses.Inc()
		}
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sum, err := s.Unified(ctx, id)
	if err != nil {
		return nil, err
	}

	rep := unified.BuildReport(id, a.OperatorName, requestcontext.Now(ctx), sum)
	doc, err := report.RenderWithTimeout(ctx, s.renderer, rep, s.renderTimeout)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, doc, 0)
	}
	if s.metrics != nil {
		s.metrics.ReportsGenerated.WithLabelValues(report.KindUnifiedProfile.String()).Inc()
	}
	return doc, nil
}

// emit publishes an audit event. The publisher decides whether failure is
// fatal based on the action's category.
func (s *Service) emit(ctx context.Context, id domain.AssessmentID, f domain.Framework, action audit.Action, detail string) error {
	if s.auditor == nil {
		return nil
	}
	err := s.auditor.Emit(ctx, audit.Event{
		AssessmentID: id,
		Framework:    f,
		Action:       action,
		Actor:        requestcontext.Actor(ctx),
		Detail:       detail,
		RequestID:    requestcontext.RequestID(ctx),
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "audit emission failed")
	}
	return nil
}
