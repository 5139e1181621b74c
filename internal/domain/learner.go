package domain

import (
	"time"

	"github.com/google/uuid"
)

// Learner is the ledger's view of a user: owned courses and courses flagged
// completed. Identity and profile data live with the authentication collaborator.
type Learner struct {
	ID                 uuid.UUID
	PurchasedCourseIDs []uuid.UUID
	CompletedCourseIDs []uuid.UUID
	CreatedAt          time.Time
}

// Owns reports whether courseID is in the purchased set.
func (l *Learner) Owns(courseID uuid.UUID) bool {
	for _, id := range l.PurchasedCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// Entitlement is a learner's right to a course. A revoked entitlement is kept
// so that the ledger can tell "never purchased" from "purchased, then revoked".
type Entitlement struct {
	LearnerID uuid.UUID
	CourseID  uuid.UUID
	GrantedAt time.Time
	RevokedAt *time.Time
}

// IsActive returns true if the entitlement has not been revoked.
func (e *Entitlement) IsActive() bool {
	return e.RevokedAt == nil
}

// CourseCompletion is the manual terminal flag set on a learner's course,
// independent of the computed percentage.
type CourseCompletion struct {
	LearnerID   uuid.UUID
	CourseID    uuid.UUID
	CompletedAt time.Time
}
