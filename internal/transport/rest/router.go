package rest

import (
	"net/http"

	"github.com/heartmarshall/coursetrack-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Entitlement *EntitlementHandler
	Progress    *ProgressHandler
	Completion  *CompletionHandler
	Doubt       *DoubtHandler
}

// NewRouter mounts the ledger routes. Probes are public, learner routes need
// a caller, and /v1/admin routes need a mentor or admin.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	learner := middleware.RequireAuth()
	mentor := middleware.RequireMentorRole()

	handle := func(pattern string, mw middleware.Middleware, fn http.HandlerFunc) {
		mux.Handle(pattern, mw(fn))
	}

	handle("POST /v1/courses/{courseID}/entitlement", learner, h.Entitlement.Grant)
	handle("GET /v1/courses/{courseID}/entitlement", learner, h.Entitlement.Check)
	handle("POST /v1/courses/{courseID}/completed", learner, h.Entitlement.MarkCompleted)
	handle("GET /v1/learner", learner, h.Entitlement.Learner)
	handle("POST /v1/admin/learners/{learnerID}/revoke", mentor, h.Entitlement.Revoke)

	handle("POST /v1/courses/{courseID}/topics/{topicID}/complete", learner, h.Progress.MarkTopic)
	handle("DELETE /v1/courses/{courseID}/topics/{topicID}/complete", learner, h.Progress.UnmarkTopic)
	handle("GET /v1/courses/{courseID}/progress", learner, h.Progress.Course)
	handle("GET /v1/progress", learner, h.Progress.List)

	handle("GET /v1/courses/{courseID}/completion", learner, h.Completion.Completion)
	handle("GET /v1/courses/{courseID}/certificate/eligibility", learner, h.Completion.Eligibility)
	handle("POST /v1/courses/{courseID}/certificate", learner, h.Completion.IssueCertificate)
	handle("GET /v1/dashboard", learner, h.Completion.Dashboard)

	handle("POST /v1/courses/{courseID}/topics/{topicID}/doubts", learner, h.Doubt.Submit)
	handle("GET /v1/doubts", learner, h.Doubt.ListMine)
	handle("GET /v1/doubts/{doubtID}", learner, h.Doubt.Get)
	handle("GET /v1/admin/doubts", mentor, h.Doubt.ListAll)
	handle("POST /v1/admin/doubts/{doubtID}/resolve", mentor, h.Doubt.Resolve)

	return mux
}
