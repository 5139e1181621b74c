package entitlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// MarkCourseCompleted sets the learner's terminal completed flag for the
// course. The flag is independent of the computed percentage. Calling it again
// is a no-op. Returns domain.ErrNotEntitled if the learner does not own the course.
func (s *Service) MarkCourseCompleted(ctx context.Context, learnerID, courseID uuid.UUID) error {
	if err := validatePair(learnerID, courseID); err != nil {
		return err
	}

	active, err := s.learners.IsActive(ctx, learnerID, courseID)
	if err != nil {
		return fmt.Errorf("check entitlement: %w", err)
	}
	if !active {
		return domain.ErrNotEntitled
	}

	changed, err := s.learners.MarkCompleted(ctx, learnerID, courseID)
	if err != nil {
		return fmt.Errorf("mark course completed: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "course marked completed",
			slog.String("learner_id", learnerID.String()),
			slog.String("course_id", courseID.String()),
		)
	}
	return nil
}
