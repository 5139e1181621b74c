package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/pkg/ctxutil"
)

// RequireMentor returns domain.ErrForbidden if the context user may not
// answer doubts. Admins pass as mentors.
func RequireMentor(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsMentorCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireMentorRole rejects anonymous callers with 401 and non-mentors with 403.
func RequireMentorRole() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch RequireMentor(r.Context()) {
			case nil:
				next.ServeHTTP(w, r)
			case domain.ErrUnauthorized:
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			default:
				writeJSONError(w, http.StatusForbidden, "forbidden", "mentor role required")
			}
		})
	}
}
