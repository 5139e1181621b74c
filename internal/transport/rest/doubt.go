package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/doubt"
	"github.com/heartmarshall/coursetrack-backend/pkg/ctxutil"
)

type doubtService interface {
	Submit(ctx context.Context, input doubt.SubmitInput) (*domain.Doubt, error)
	Resolve(ctx context.Context, input doubt.ResolveInput) (*domain.Doubt, error)
	Get(ctx context.Context, doubtID uuid.UUID) (*domain.Doubt, error)
	ListAll(ctx context.Context, input doubt.ListInput) ([]domain.Doubt, error)
	ListForLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.Doubt, error)
}

// DoubtHandler serves the learner question and mentor answer endpoints.
type DoubtHandler struct {
	svc doubtService
	log *slog.Logger
}

// NewDoubtHandler creates a DoubtHandler.
func NewDoubtHandler(svc doubtService, logger *slog.Logger) *DoubtHandler {
	return &DoubtHandler{svc: svc, log: logger.With("handler", "doubt")}
}

type submitDoubtRequest struct {
	TopicTitle string `json:"topicTitle"`
	Query      string `json:"query"`
}

// Submit handles POST /v1/courses/{courseID}/topics/{topicID}/doubts.
func (h *DoubtHandler) Submit(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, topicID, err := topicTarget(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req submitDoubtRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Submit(r.Context(), doubt.SubmitInput{
		LearnerID:  learnerID,
		CourseID:   courseID,
		TopicID:    topicID,
		TopicTitle: req.TopicTitle,
		Query:      req.Query,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDoubtResponse(d))
}

type resolveDoubtRequest struct {
	Response string `json:"response"`
}

// Resolve handles POST /v1/admin/doubts/{doubtID}/resolve.
func (h *DoubtHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	mentorID, err := callerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	doubtID, err := pathUUID(r, "doubtID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req resolveDoubtRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Resolve(r.Context(), doubt.ResolveInput{
		MentorID: mentorID,
		DoubtID:  doubtID,
		Response: req.Response,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDoubtResponse(d))
}

type doubtListResponse struct {
	Doubts []doubtResponse `json:"doubts"`
}

// ListAll handles GET /v1/admin/doubts?status=pending&limit=50&offset=0.
func (h *DoubtHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	input, err := parseDoubtListInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	doubts, err := h.svc.ListAll(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doubtListResponse{Doubts: toDoubtResponses(doubts)})
}

// ListMine handles GET /v1/doubts.
func (h *DoubtHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	learnerID, err := callerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	doubts, err := h.svc.ListForLearner(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, doubtListResponse{Doubts: toDoubtResponses(doubts)})
}

// Get handles GET /v1/doubts/{doubtID}. Learners only see their own doubts;
// another learner's doubt answers 404.
func (h *DoubtHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerUUID, err := callerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	doubtID, err := pathUUID(r, "doubtID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Get(r.Context(), doubtID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if d.LearnerID != callerUUID && !ctxutil.IsMentorCtx(r.Context()) {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toDoubtResponse(d))
}

func parseDoubtListInput(r *http.Request) (doubt.ListInput, error) {
	var input doubt.ListInput

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.DoubtStatus(raw)
		if !status.IsValid() {
			return input, domain.NewValidationError("status", "must be pending or resolved")
		}
		input.Status = &status
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		return input, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return input, err
	}
	input.Limit = limit
	input.Offset = offset
	return input, nil
}
