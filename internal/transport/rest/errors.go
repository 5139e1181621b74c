package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// retryAfterSeconds is sent with 503 responses when storage is unreachable.
const retryAfterSeconds = "5"

type errorResponse struct {
	Error            string               `json:"error"`
	Code             string               `json:"code,omitempty"`
	Fields           []fieldErrorResponse `json:"fields,omitempty"`
	RemainingSeconds *int                 `json:"remainingSeconds,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error onto the HTTP taxonomy. Only unexpected
// errors are logged; everything else is a normal client outcome.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var validation *domain.ValidationError
	var engagement *domain.InsufficientEngagementError

	switch {
	case errors.As(err, &validation):
		resp := errorResponse{Error: "validation failed", Code: "validation"}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "validation"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: "not_found"})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Code: "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden", Code: "forbidden"})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "already_exists"})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "conflict"})
	case errors.As(err, &engagement):
		remaining := engagement.RemainingSeconds()
		writeJSON(w, http.StatusPreconditionFailed, errorResponse{
			Error:            err.Error(),
			Code:             "insufficient_engagement",
			RemainingSeconds: &remaining,
		})
	case errors.Is(err, domain.ErrPreconditionFailed):
		writeJSON(w, http.StatusPreconditionFailed, errorResponse{Error: err.Error(), Code: preconditionCode(err)})
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.WarnContext(r.Context(), "storage unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", retryAfterSeconds)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable", Code: "unavailable"})
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "internal"})
	}
}

func preconditionCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotEntitled):
		return "not_entitled"
	case errors.Is(err, domain.ErrInsufficientEngagement):
		return "insufficient_engagement"
	case errors.Is(err, domain.ErrAlreadyResolved):
		return "already_resolved"
	case errors.Is(err, domain.ErrNotEligible):
		return "not_eligible"
	default:
		return "precondition_failed"
	}
}
