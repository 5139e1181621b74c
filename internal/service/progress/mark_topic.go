package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// MarkTopicComplete adds the topic to the learner's completed set for the
// course. Checks run in order: entitlement, topic existence, engagement.
// Marking an already completed topic is a no-op that returns the record.
func (s *Service) MarkTopicComplete(ctx context.Context, input MarkTopicCompleteInput) (*domain.ProgressRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		record *domain.ProgressRecord
		added  bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ent, err := s.lockEntitlement(txCtx, input.LearnerID, input.CourseID)
		if err != nil {
			return err
		}
		if !ent.IsActive() {
			return domain.ErrNotEntitled
		}

		exists, err := s.curriculum.TopicExists(txCtx, input.CourseID, input.TopicID)
		if err != nil {
			return fmt.Errorf("check topic: %w", err)
		}
		if !exists {
			return fmt.Errorf("topic %s: %w", input.TopicID, domain.ErrNotFound)
		}

		if err := s.gate.Check(txCtx, input.LearnerID, input.TopicID, input.WatchedSeconds); err != nil {
			return err
		}

		added, err = s.progress.AddTopic(txCtx, input.LearnerID, input.CourseID, input.TopicID)
		if err != nil {
			return fmt.Errorf("add topic: %w", err)
		}

		record, err = s.progress.GetRecord(txCtx, input.LearnerID, input.CourseID)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if added {
		s.log.InfoContext(ctx, "topic completed",
			slog.String("learner_id", input.LearnerID.String()),
			slog.String("course_id", input.CourseID.String()),
			slog.String("topic_id", input.TopicID.String()),
			slog.Int("watched_seconds", input.WatchedSeconds),
		)
	}

	return record, nil
}

// lockEntitlement takes the per-pair row lock. A learner who never held the
// entitlement gets domain.ErrNotEntitled.
func (s *Service) lockEntitlement(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Entitlement, error) {
	ent, err := s.learners.GetForUpdate(ctx, learnerID, courseID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotEntitled
	}
	if err != nil {
		return nil, fmt.Errorf("lock entitlement: %w", err)
	}
	return ent, nil
}
