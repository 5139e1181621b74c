package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Dashboard returns completion stats for every course the learner owns or has
// progress in, owned courses first. Courses missing from the curriculum store
// are skipped with a warning.
func (s *Service) Dashboard(ctx context.Context, learnerID uuid.UUID) ([]domain.CompletionStats, error) {
	if learnerID == uuid.Nil {
		return nil, domain.NewValidationError("learner_id", "required")
	}

	purchased, err := s.learners.ListActiveCourseIDs(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list purchased: %w", err)
	}
	records, err := s.progress.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	byCourse := make(map[uuid.UUID]*domain.ProgressRecord, len(records))
	courseIDs := make([]uuid.UUID, 0, len(purchased)+len(records))
	for _, id := range purchased {
		if _, ok := byCourse[id]; !ok {
			byCourse[id] = nil
			courseIDs = append(courseIDs, id)
		}
	}
	for i := range records {
		id := records[i].CourseID
		if _, ok := byCourse[id]; !ok {
			courseIDs = append(courseIDs, id)
		}
		byCourse[id] = &records[i]
	}

	curricula := make([]*domain.Curriculum, len(courseIDs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.DashboardConcurrency)
	for i, id := range courseIDs {
		g.Go(func() error {
			c, err := s.curriculum.GetCourse(gCtx, id)
			if errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "dashboard course missing from curriculum",
					slog.String("course_id", id.String()))
				return nil
			}
			if err != nil {
				return fmt.Errorf("get curriculum %s: %w", id, err)
			}
			curricula[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := make([]domain.CompletionStats, 0, len(courseIDs))
	for i, id := range courseIDs {
		if curricula[i] == nil {
			continue
		}
		stats = append(stats, domain.ComputeCompletion(curricula[i], byCourse[id]))
	}
	return stats, nil
}
