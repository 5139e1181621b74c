package entitlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// IsEntitled reports whether the learner currently owns the course.
func (s *Service) IsEntitled(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error) {
	if err := validatePair(learnerID, courseID); err != nil {
		return false, err
	}
	active, err := s.learners.IsActive(ctx, learnerID, courseID)
	if err != nil {
		return false, fmt.Errorf("check entitlement: %w", err)
	}
	return active, nil
}

// ListPurchased returns the ids of courses the learner currently owns.
func (s *Service) ListPurchased(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.learners.ListActiveCourseIDs(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list purchased: %w", err)
	}
	return ids, nil
}

// GetLearner returns the learner's purchased and completed courses. A learner
// the ledger has never seen is returned with empty sets.
func (s *Service) GetLearner(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error) {
	l, err := s.learners.GetLearner(ctx, learnerID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Learner{
			ID:                 learnerID,
			PurchasedCourseIDs: []uuid.UUID{},
			CompletedCourseIDs: []uuid.UUID{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get learner: %w", err)
	}
	return l, nil
}
