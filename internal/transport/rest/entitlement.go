package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/entitlement"
)

type entitlementService interface {
	Grant(ctx context.Context, learnerID, courseID uuid.UUID) (*entitlement.GrantResult, error)
	Revoke(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error)
	IsEntitled(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error)
	MarkCourseCompleted(ctx context.Context, learnerID, courseID uuid.UUID) error
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error)
}

// EntitlementHandler serves course ownership endpoints.
type EntitlementHandler struct {
	svc entitlementService
	log *slog.Logger
}

// NewEntitlementHandler creates an EntitlementHandler.
func NewEntitlementHandler(svc entitlementService, logger *slog.Logger) *EntitlementHandler {
	return &EntitlementHandler{svc: svc, log: logger.With("handler", "entitlement")}
}

type grantResponse struct {
	Status             string               `json:"status"`
	Entitlement        *entitlementResponse `json:"entitlement,omitempty"`
	PurchasedCourseIDs []uuid.UUID          `json:"purchasedCourseIds,omitempty"`
}

// Grant handles POST /v1/courses/{courseID}/entitlement.
// Granting an owned course answers 200 so that client retries are harmless.
func (h *EntitlementHandler) Grant(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, err := callerAndCourse(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Grant(r.Context(), learnerID, courseID)
	if errors.Is(err, domain.ErrAlreadyEntitled) {
		writeJSON(w, http.StatusOK, grantResponse{Status: "already_entitled"})
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ent := toEntitlementResponse(result.Entitlement)
	writeJSON(w, http.StatusCreated, grantResponse{
		Status:             "granted",
		Entitlement:        &ent,
		PurchasedCourseIDs: result.PurchasedCourseIDs,
	})
}

type entitledResponse struct {
	CourseID uuid.UUID `json:"courseId"`
	Entitled bool      `json:"entitled"`
}

// Check handles GET /v1/courses/{courseID}/entitlement.
func (h *EntitlementHandler) Check(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, err := callerAndCourse(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ok, err := h.svc.IsEntitled(r.Context(), learnerID, courseID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entitledResponse{CourseID: courseID, Entitled: ok})
}

type revokeRequest struct {
	CourseIDs []uuid.UUID `json:"courseIds"`
}

type revokeResponse struct {
	Revoked int64 `json:"revoked"`
}

// Revoke handles POST /v1/admin/learners/{learnerID}/revoke.
func (h *EntitlementHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathUUID(r, "learnerID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req revokeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.Revoke(r.Context(), learnerID, req.CourseIDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, revokeResponse{Revoked: n})
}

// MarkCompleted handles POST /v1/courses/{courseID}/completed.
func (h *EntitlementHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	learnerID, courseID, err := callerAndCourse(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.MarkCourseCompleted(r.Context(), learnerID, courseID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

// Learner handles GET /v1/learner.
func (h *EntitlementHandler) Learner(w http.ResponseWriter, r *http.Request) {
	learnerID, err := callerID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	l, err := h.svc.GetLearner(r.Context(), learnerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, learnerResponse{
		ID:                 l.ID,
		PurchasedCourseIDs: nonNilIDs(l.PurchasedCourseIDs),
		CompletedCourseIDs: nonNilIDs(l.CompletedCourseIDs),
	})
}

func callerAndCourse(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	learnerID, err := callerID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	courseID, err := pathUUID(r, "courseID")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return learnerID, courseID, nil
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
