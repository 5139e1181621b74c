package entitlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Grant gives the learner access to the course. A revoked entitlement is
// re-activated and the learner's earlier progress becomes visible again.
// Returns domain.ErrNotFound if the course does not exist and
// domain.ErrAlreadyEntitled if the learner already owns it.
func (s *Service) Grant(ctx context.Context, learnerID, courseID uuid.UUID) (*GrantResult, error) {
	if err := validatePair(learnerID, courseID); err != nil {
		return nil, err
	}

	exists, err := s.curriculum.CourseExists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("check course: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("course %s: %w", courseID, domain.ErrNotFound)
	}

	var result GrantResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.learners.EnsureLearner(txCtx, learnerID); err != nil {
			return fmt.Errorf("ensure learner: %w", err)
		}

		ent, err := s.learners.Grant(txCtx, learnerID, courseID)
		if err != nil {
			return err
		}
		result.Entitlement = ent

		purchased, err := s.learners.ListActiveCourseIDs(txCtx, learnerID)
		if err != nil {
			return fmt.Errorf("list purchased: %w", err)
		}
		result.PurchasedCourseIDs = purchased
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entitlement granted",
		slog.String("learner_id", learnerID.String()),
		slog.String("course_id", courseID.String()),
	)

	return &result, nil
}
