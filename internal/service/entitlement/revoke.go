package entitlement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Revoke removes the learner's access to every listed course. Ids the learner
// does not own are ignored and recorded progress is left untouched.
// Returns the number of entitlements that were actually revoked.
func (s *Service) Revoke(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error) {
	if learnerID == uuid.Nil {
		return 0, domain.NewValidationError("learner_id", "required")
	}

	ids := dedupe(courseIDs)
	if len(ids) == 0 {
		return 0, nil
	}

	revoked, err := s.learners.Revoke(ctx, learnerID, ids)
	if err != nil {
		return 0, fmt.Errorf("revoke entitlements: %w", err)
	}

	s.log.InfoContext(ctx, "entitlements revoked",
		slog.String("learner_id", learnerID.String()),
		slog.Int("requested", len(ids)),
		slog.Int64("revoked", revoked),
	)

	return revoked, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
