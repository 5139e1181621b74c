package progress

import (
	"context"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// EngagementGate decides whether a learner has engaged with a topic enough to
// mark it complete. Implementations return *domain.InsufficientEngagementError
// when the gate is closed.
type EngagementGate interface {
	Check(ctx context.Context, learnerID, topicID uuid.UUID, watchedSeconds int) error
}

// ReportedWatchTimeGate trusts the watch time reported by the client.
// A zero RequiredSeconds opens the gate for everyone.
type ReportedWatchTimeGate struct {
	RequiredSeconds int
}

func (g ReportedWatchTimeGate) Check(_ context.Context, _, _ uuid.UUID, watchedSeconds int) error {
	if watchedSeconds < g.RequiredSeconds {
		return &domain.InsufficientEngagementError{
			RequiredSeconds: g.RequiredSeconds,
			WatchedSeconds:  watchedSeconds,
		}
	}
	return nil
}
