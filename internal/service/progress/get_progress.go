package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// GetProgress returns every progress record of the learner, one per course.
func (s *Service) GetProgress(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error) {
	if learnerID == uuid.Nil {
		return nil, domain.NewValidationError("learner_id", "required")
	}
	records, err := s.progress.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return records, nil
}

// GetCourseProgress returns the learner's record for one course. The record
// has an empty set when nothing was completed yet.
func (s *Service) GetCourseProgress(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.ProgressRecord, error) {
	var errs []domain.FieldError
	if learnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "learner_id", Message: "required"})
	}
	if courseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	record, err := s.progress.GetRecord(ctx, learnerID, courseID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return record, nil
}
