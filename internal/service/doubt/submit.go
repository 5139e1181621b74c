package doubt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Submit records a pending doubt for a topic of a course the learner owns.
// The topic title is stored as given and never refreshed from the curriculum.
// Ownership is checked before the text, so a non-owner always sees
// ErrNotEntitled.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Doubt, error) {
	if err := input.validateIDs(); err != nil {
		return nil, err
	}

	active, err := s.learners.IsActive(ctx, input.LearnerID, input.CourseID)
	if err != nil {
		return nil, fmt.Errorf("check entitlement: %w", err)
	}
	if !active {
		return nil, domain.ErrNotEntitled
	}

	if err := input.validateContent(s.cfg.QueryMaxLength); err != nil {
		return nil, err
	}

	d, err := s.doubts.Create(ctx, &domain.Doubt{
		LearnerID:  input.LearnerID,
		CourseID:   input.CourseID,
		TopicID:    input.TopicID,
		TopicTitle: strings.TrimSpace(input.TopicTitle),
		Query:      strings.TrimSpace(input.Query),
	})
	if err != nil {
		return nil, fmt.Errorf("create doubt: %w", err)
	}

	s.log.InfoContext(ctx, "doubt submitted",
		slog.String("doubt_id", d.ID.String()),
		slog.String("learner_id", d.LearnerID.String()),
		slog.String("course_id", d.CourseID.String()),
		slog.String("topic_id", d.TopicID.String()),
	)

	return d, nil
}
