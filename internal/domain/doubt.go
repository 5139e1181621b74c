package domain

import (
	"time"

	"github.com/google/uuid"
)

// Doubt is a learner's question anchored to a (course, topic) pair.
// TopicTitle is copied at submission and never re-read from the curriculum,
// so renaming or removing the topic does not change historical doubts.
type Doubt struct {
	ID         uuid.UUID
	LearnerID  uuid.UUID
	CourseID   uuid.UUID
	TopicID    uuid.UUID
	TopicTitle string
	Query      string
	Status     DoubtStatus
	Response   *string
	ResolverID *uuid.UUID
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// IsResolved returns true once a mentor has answered.
func (d *Doubt) IsResolved() bool {
	return d.Status == DoubtStatusResolved
}

// DoubtFilter narrows the mentor-side doubt listing.
type DoubtFilter struct {
	Status *DoubtStatus
	Limit  int
	Offset int
}

// Certificate is issued once per (learner, course) after the eligibility gate passes.
type Certificate struct {
	ID        uuid.UUID
	LearnerID uuid.UUID
	CourseID  uuid.UUID
	Number    string
	Percent   int
	IssuedAt  time.Time
}
