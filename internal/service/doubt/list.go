package doubt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// ListAll returns doubts of every learner, newest first.
func (s *Service) ListAll(ctx context.Context, input ListInput) ([]domain.Doubt, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	switch {
	case limit == 0:
		limit = s.cfg.ListDefaultLimit
	case limit > s.cfg.ListMaxLimit:
		limit = s.cfg.ListMaxLimit
	}

	doubts, err := s.doubts.List(ctx, domain.DoubtFilter{
		Status: input.Status,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list doubts: %w", err)
	}
	return doubts, nil
}

// ListForLearner returns the learner's own doubts, newest first.
func (s *Service) ListForLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.Doubt, error) {
	if learnerID == uuid.Nil {
		return nil, domain.NewValidationError("learner_id", "required")
	}
	doubts, err := s.doubts.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list learner doubts: %w", err)
	}
	return doubts, nil
}
