// Package handler exposes the assessment pipeline over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"orbita/internal/assessment"
	"orbita/internal/classify"
	appdomain "orbita/internal/domain"
	"orbita/internal/gap"
	"orbita/internal/platform/metrics"
	"orbita/internal/platform/middleware"
	"orbita/internal/report"
	"orbita/internal/scoping"
	"orbita/internal/unified"
	dErrors "orbita/pkg/domain-errors"
	"orbita/pkg/domain"
	"orbita/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks

// Service defines the assessment operations the handler needs.
type Service interface {
	Create(ctx context.Context, in assessment.CreateInput) (*assessment.Assessment, error)
	Get(ctx context.Context, id domain.AssessmentID) (*assessment.Assessment, error)
	EvaluateScoping(ctx context.Context, answers scoping.Answers) (scoping.Verdict, error)
	UpdateStatus(ctx context.Context, id domain.AssessmentID, reqID domain.RequirementID, status domain.ComplianceStatus, note string) error
	Classification(ctx context.Context, id domain.AssessmentID, f domain.Framework) (*classify.Result, error)
	Scoring(ctx context.Context, id domain.AssessmentID, f domain.Framework) (*assessment.ScoringView, error)
	Gaps(ctx context.Context, id domain.AssessmentID, f domain.Framework) ([]gap.Record, error)
	Report(ctx context.Context, id domain.AssessmentID, f domain.Framework, kind report.Kind) ([]byte, error)
	Unified(ctx context.Context, id domain.AssessmentID) (*unified.Summary, error)
}

// Handler handles assessment endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
	metrics *metrics.Metrics
}

// New creates a new assessment Handler.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
	}
}

// Register registers the assessment routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.LatencyMiddleware(h.metrics))

	router.Post("/scoping/evaluate", h.handleEvaluateScoping)
	router.Post("/assessments", h.handleCreate)
	router.Get("/assessments/{assessmentID}", h.handleGet)
	router.Put("/assessments/{assessmentID}/statuses/{requirementID}", h.handleUpdateStatus)
	router.Get("/assessments/{assessmentID}/frameworks/{framework}/classification", h.handleClassification)
	router.Get("/assessments/{assessmentID}/frameworks/{framework}/scoring", h.handleScoring)
	router.Get("/assessments/{assessmentID}/frameworks/{framework}/gaps", h.handleGaps)
	router.Get("/assessments/{assessmentID}/frameworks/{framework}/report", h.handleReport)
	router.Get("/assessments/{assessmentID}/unified", h.handleUnified)
	router.Get("/assessments/{assessmentID}/unified/report", h.handleUnifiedReport)

	r.Mount("/", router)
}

// createRequest is the wire form of a new assessment. Profile enums are
// decoded as-is; Validate on the service side rejects unknown values.
type createRequest struct {
	OperatorName string                    `json:"operator_name"`
	Profile      appdomain.OperatorProfile `json:"profile"`
	Answers      scoping.Answers           `json:"answers,omitempty"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create assessment request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	a, err := h.service.Create(ctx, assessment.CreateInput{
		OperatorName: req.OperatorName,
		Profile:      req.Profile,
		Answers:      req.Answers,
	})
	if err != nil {
		h.writeServiceError(ctx, w, "create assessment", err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.assessmentID(w, r)
	if !ok {
		return
	}
	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(r.Context(), w, "get assessment", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.assessmentID(w, r)
	if !ok {
		return
	}
	reqID := domain.RequirementID(chi.URLParam(r, "requirementID"))

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	status, err := domain.ParseComplianceStatus(req.Status)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.UpdateStatus(ctx, id, reqID, status, req.Note); err != nil {
		h.writeServiceError(ctx, w, "update status", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClassification(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.assessmentAndFramework(w, r)
	if !ok {
		return
	}
	res, err := h.service.Classification(r.Context(), id, f)
	if err != nil {
		h.writeServiceError(r.Context(), w, "classification", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleScoring(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.assessmentAndFramework(w, r)
	if !ok {
		return
	}
	view, err := h.service.Scoring(r.Context(), id, f)
	if err != nil {
		h.writeServiceError(r.Context(), w, "scoring", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleGaps(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.assessmentAndFramework(w, r)
	if !ok {
		return
	}
	records, err := h.service.Gaps(r.Context(), id, f)
	if err != nil {
		h.writeServiceError(r.Context(), w, "gap analysis", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.assessmentAndFramework(w, r)
	if !ok {
		return
	}
	kind, err := report.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	doc, err := h.service.Report(r.Context(), id, f, kind)
	if err != nil {
		h.writeServiceError(r.Context(), w, "report", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) handleUnified(w http.ResponseWriter, r *http.Request) {
	id, ok := h.assessmentID(w, r)
	if !ok {
		return
	}
	sum, err := h.service.Unified(r.Context(), id)
	if err != nil {
		h.writeServiceError(r.Context(), w, "unified profile", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sum)
}

func (h *Handler) handleUnifiedReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.assessmentID(w, r)
	if !ok {
		return
	}
	doc, err := h.service.Report(r.Context(), id, "", report.KindUnifiedProfile)
	if err != nil {
		h.writeServiceError(r.Context(), w, "unified report", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

type scopingRequest struct {
	Answers scoping.Answers `json:"answers"`
}

func (h *Handler) handleEvaluateScoping(w http.ResponseWriter, r *http.Request) {
	var req scopingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	verdict, err := h.service.EvaluateScoping(r.Context(), req.Answers)
	if err != nil {
		h.writeServiceError(r.Context(), w, "scoping evaluation", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, verdict)
}

func (h *Handler) assessmentID(w http.ResponseWriter, r *http.Request) (domain.AssessmentID, bool) {
	id, err := domain.ParseAssessmentID(chi.URLParam(r, "assessmentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return domain.AssessmentID{}, false
	}
	return id, true
}

func (h *Handler) assessmentAndFramework(w http.ResponseWriter, r *http.Request) (domain.AssessmentID, domain.Framework, bool) {
	id, ok := h.assessmentID(w, r)
	if !ok {
		return domain.AssessmentID{}, "", false
	}
	f, err := domain.ParseFramework(chi.URLParam(r, "framework"))
	if err != nil {
		httputil.WriteError(w, err)
		return domain.AssessmentID{}, "", false
	}
	return id, f, true
}

// writeServiceError logs unexpected failures and renders the coded response.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "operation failed",
			"op", op,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
