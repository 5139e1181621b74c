package completion

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// ComputePercentage returns the learner's completion of the course against its
// current curriculum. Returns domain.ErrNotFound if the course does not exist.
func (s *Service) ComputePercentage(ctx context.Context, courseID, learnerID uuid.UUID) (domain.CompletionStats, error) {
	if err := validatePair(courseID, learnerID); err != nil {
		return domain.CompletionStats{}, err
	}

	c, err := s.curriculum.GetCourse(ctx, courseID)
	if err != nil {
		return domain.CompletionStats{}, fmt.Errorf("get curriculum: %w", err)
	}

	record, err := s.progress.GetRecord(ctx, learnerID, courseID)
	if err != nil {
		return domain.CompletionStats{}, fmt.Errorf("get record: %w", err)
	}

	return domain.ComputeCompletion(c, record), nil
}

// IsCertificateEligible reports whether the learner's completion clears the
// certificate threshold.
func (s *Service) IsCertificateEligible(ctx context.Context, courseID, learnerID uuid.UUID) (bool, domain.CompletionStats, error) {
	stats, err := s.ComputePercentage(ctx, courseID, learnerID)
	if err != nil {
		return false, stats, err
	}
	return stats.EligibleAt(s.cfg.CertificateThreshold), stats, nil
}

func validatePair(courseID, learnerID uuid.UUID) error {
	var errs []domain.FieldError
	if courseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if learnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "learner_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
