package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// UnmarkTopicComplete removes the topic from the learner's completed set.
// There is no engagement check and a revoked entitlement does not block it;
// only a learner who never owned the course is refused. Removing a topic that
// is not in the set is a no-op.
func (s *Service) UnmarkTopicComplete(ctx context.Context, input UnmarkTopicCompleteInput) (*domain.ProgressRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		record  *domain.ProgressRecord
		removed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lockEntitlement(txCtx, input.LearnerID, input.CourseID); err != nil {
			return err
		}

		var err error
		removed, err = s.progress.RemoveTopic(txCtx, input.LearnerID, input.CourseID, input.TopicID)
		if err != nil {
			return fmt.Errorf("remove topic: %w", err)
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

	if removed {
		s.log.InfoContext(ctx, "topic uncompleted",
			slog.String("learner_id", input.LearnerID.String()),
			slog.String("course_id", input.CourseID.String()),
			slog.String("topic_id", input.TopicID.String()),
		)
	}

	return record, nil
}
