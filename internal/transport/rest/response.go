package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

type entitlementResponse struct {
	LearnerID uuid.UUID  `json:"learnerId"`
	CourseID  uuid.UUID  `json:"courseId"`
	GrantedAt time.Time  `json:"grantedAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
	Active    bool       `json:"active"`
}

func toEntitlementResponse(e *domain.Entitlement) entitlementResponse {
	return entitlementResponse{
		LearnerID: e.LearnerID,
		CourseID:  e.CourseID,
		GrantedAt: e.GrantedAt,
		RevokedAt: e.RevokedAt,
		Active:    e.IsActive(),
	}
}

type learnerResponse struct {
	ID                 uuid.UUID   `json:"id"`
	PurchasedCourseIDs []uuid.UUID `json:"purchasedCourseIds"`
	CompletedCourseIDs []uuid.UUID `json:"completedCourseIds"`
}

type progressResponse struct {
	CourseID          uuid.UUID   `json:"courseId"`
	CompletedTopicIDs []uuid.UUID `json:"completedTopicIds"`
	UpdatedAt         *time.Time  `json:"updatedAt,omitempty"`
}

func toProgressResponse(r *domain.ProgressRecord) progressResponse {
	resp := progressResponse{
		CourseID:          r.CourseID,
		CompletedTopicIDs: r.CompletedTopicIDs.IDs(),
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

type completionResponse struct {
	CourseID  uuid.UUID `json:"courseId"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
	Percent   int       `json:"percent"`
}

func toCompletionResponse(s domain.CompletionStats) completionResponse {
	return completionResponse{
		CourseID:  s.CourseID,
		Completed: s.Completed,
		Total:     s.Total,
		Percent:   s.Percent,
	}
}

type doubtResponse struct {
	ID         uuid.UUID  `json:"id"`
	LearnerID  uuid.UUID  `json:"learnerId"`
	CourseID   uuid.UUID  `json:"courseId"`
	TopicID    uuid.UUID  `json:"topicId"`
	TopicTitle string     `json:"topicTitle"`
	Query      string     `json:"query"`
	Status     string     `json:"status"`
	Response   *string    `json:"response,omitempty"`
	ResolverID *uuid.UUID `json:"resolverId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

func toDoubtResponse(d *domain.Doubt) doubtResponse {
	return doubtResponse{
		ID:         d.ID,
		LearnerID:  d.LearnerID,
		CourseID:   d.CourseID,
		TopicID:    d.TopicID,
		TopicTitle: d.TopicTitle,
		Query:      d.Query,
		Status:     d.Status.String(),
		Response:   d.Response,
		ResolverID: d.ResolverID,
		CreatedAt:  d.CreatedAt,
		ResolvedAt: d.ResolvedAt,
	}
}

func toDoubtResponses(doubts []domain.Doubt) []doubtResponse {
	out := make([]doubtResponse, 0, len(doubts))
	for i := range doubts {
		out = append(out, toDoubtResponse(&doubts[i]))
	}
	return out
}

type certificateResponse struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"courseId"`
	Number   string    `json:"number"`
	Percent  int       `json:"percent"`
	IssuedAt time.Time `json:"issuedAt"`
}

func toCertificateResponse(c *domain.Certificate) certificateResponse {
	return certificateResponse{
		ID:       c.ID,
		CourseID: c.CourseID,
		Number:   c.Number,
		Percent:  c.Percent,
		IssuedAt: c.IssuedAt,
	}
}
