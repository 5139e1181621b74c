package doubt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Resolve answers a pending doubt. Only the first answer is stored; a second
// attempt fails with domain.ErrAlreadyResolved and leaves the stored response
// unchanged. A missing doubt is reported before an empty response.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*domain.Doubt, error) {
	if err := input.validateIDs(); err != nil {
		return nil, err
	}

	if err := input.validateResponse(); err != nil {
		if _, getErr := s.doubts.GetByID(ctx, input.DoubtID); getErr != nil {
			return nil, getErr
		}
		return nil, err
	}

	d, err := s.doubts.Resolve(ctx, input.DoubtID, input.MentorID, strings.TrimSpace(input.Response))
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "doubt resolved",
		slog.String("doubt_id", d.ID.String()),
		slog.String("mentor_id", input.MentorID.String()),
	)

	return d, nil
}

// Get returns a doubt by id.
func (s *Service) Get(ctx context.Context, doubtID uuid.UUID) (*domain.Doubt, error) {
	d, err := s.doubts.GetByID(ctx, doubtID)
	if err != nil {
		return nil, fmt.Errorf("get doubt: %w", err)
	}
	return d, nil
}
