package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/completion"
)

type completionService interface {
	ComputePercentage(ctx context.Context, courseID, learnerID uuid.UUID) (domain.CompletionStats, error)
	IsCertificateEligible(ctx context.Context, courseID, learnerID uuid.UUID) (bool, domain.CompletionStats, error)
	IssueCertificate(ctx context.Context, courseID, learnerID uuid.UUID) (*completion.IssueResult, error)
	Dashboard(ctx context.Context, learnerID uuid.UUID) ([]domain.CompletionStats, error)
}

// CompletionHandler serves completion percentage and certificate endpoints.
type CompletionHandler struct {
	svc completionService
	log *slog.Logger
}

// NewCompletionHandler creates a CompletionHandler.
func NewCompletionHandler(svc completionService, logger *slog.Logger) *CompletionHandler {
	return &CompletionHandler{svc: svc, log: logger.With("handler", "completion")}
}

// Completion handles GET /v1/courses/{courseID}/completion.
func (h *CompletionHandler) Completion(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, err := callerAndCourse(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.ComputePercentage(r.Context(), courseID, learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompletionResponse(stats))
}

type eligibilityResponse struct {
	Eligible   bool               `json:"eligible"`
	Completion completionResponse `json:"completion"`
}

// Eligibility handles GET /v1/courses/{courseID}/certificate/eligibility.
func (h *CompletionHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, err := callerAndCourse(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	eligible, stats, err := h.svc.IsCertificateEligible(r.Context(), courseID, learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, eligibilityResponse{
		Eligible:   eligible,
		Completion: toCompletionResponse(stats),
	})
}

// IssueCertificate handles POST /v1/courses/{courseID}/certificate.
// A new certificate answers 201; an existing one answers 200.
func (h *CompletionHandler) IssueCertificate(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, err := callerAndCourse(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.IssueCertificate(r.Context(), courseID, learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if result.Issued {
		status = http.StatusCreated
	}
	writeJSON(w, status, toCertificateResponse(result.Certificate))
}

type dashboardResponse struct {
	Courses []completionResponse `json:"courses"`
}

// Dashboard handles GET /v1/dashboard.
func (h *CompletionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	learnerID, err := callerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stats, err := h.svc.Dashboard(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dashboardResponse{Courses: make([]completionResponse, 0, len(stats))}
	for _, s := range stats {
		resp.Courses = append(resp.Courses, toCompletionResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}
