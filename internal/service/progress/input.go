package progress

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// MarkTopicCompleteInput holds parameters for marking a topic complete.
type MarkTopicCompleteInput struct {
	LearnerID      uuid.UUID
	CourseID       uuid.UUID
	TopicID        uuid.UUID
	WatchedSeconds int
}

func (i MarkTopicCompleteInput) Validate() error {
	errs := validateIDs(i.LearnerID, i.CourseID, i.TopicID)
	if i.WatchedSeconds < 0 {
		errs = append(errs, domain.FieldError{Field: "watched_seconds", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UnmarkTopicCompleteInput holds parameters for removing a completed topic.
type UnmarkTopicCompleteInput struct {
	LearnerID uuid.UUID
	CourseID  uuid.UUID
	TopicID   uuid.UUID
}

func (i UnmarkTopicCompleteInput) Validate() error {
	if errs := validateIDs(i.LearnerID, i.CourseID, i.TopicID); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateIDs(learnerID, courseID, topicID uuid.UUID) []domain.FieldError {
	var errs []domain.FieldError
	if learnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "learner_id", Message: "required"})
	}
	if courseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if topicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	return errs
}
