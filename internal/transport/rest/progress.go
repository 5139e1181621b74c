package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/progress"
)

type progressService interface {
	MarkTopicComplete(ctx context.Context, input progress.MarkTopicCompleteInput) (*domain.ProgressRecord, error)
	UnmarkTopicComplete(ctx context.Context, input progress.UnmarkTopicCompleteInput) (*domain.ProgressRecord, error)
	GetProgress(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error)
	GetCourseProgress(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.ProgressRecord, error)
}

// ProgressHandler serves topic completion endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type markTopicRequest struct {
	WatchedSeconds int `json:"watchedSeconds"`
}

// MarkTopic handles POST /v1/courses/{courseID}/topics/{topicID}/complete.
func (h *ProgressHandler) MarkTopic(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, topicID, err := topicTarget(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req markTopicRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	record, err := h.svc.MarkTopicComplete(r.Context(), progress.MarkTopicCompleteInput{
		LearnerID:      learnerID,
		CourseID:       courseID,
		TopicID:        topicID,
		WatchedSeconds: req.WatchedSeconds,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(record))
}

// UnmarkTopic handles DELETE /v1/courses/{courseID}/topics/{topicID}/complete.
func (h *ProgressHandler) UnmarkTopic(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, topicID, err := topicTarget(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	record, err := h.svc.UnmarkTopicComplete(r.Context(), progress.UnmarkTopicCompleteInput{
		LearnerID: learnerID,
		CourseID:  courseID,
		TopicID:   topicID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(record))
}

type progressListResponse struct {
	Records []progressResponse `json:"records"`
}

// List handles GET /v1/progress.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	learnerID, err := callerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.svc.GetProgress(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := progressListResponse{Records: make([]progressResponse, 0, len(records))}
	for i := range records {
		resp.Records = append(resp.Records, toProgressResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Course handles GET /v1/courses/{courseID}/progress.
func (h *ProgressHandler) Course(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, err := callerAndCourse(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	record, err := h.svc.GetCourseProgress(r.Context(), learnerID, courseID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(record))
}

func topicTarget(r *http.Request) (learnerID, courseID, topicID uuid.UUID, err error) {
	learnerID, courseID, err = callerAndCourse(r)
	if err != nil {
		return
	}
	topicID, err = pathUUID(r, "topicID")
	return
}
