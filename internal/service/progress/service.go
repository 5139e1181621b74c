package progress

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

type learnerRepo interface {
	GetForUpdate(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Entitlement, error)
}

type progressRepo interface {
	AddTopic(ctx context.Context, learnerID, courseID, topicID uuid.UUID) (bool, error)
	RemoveTopic(ctx context.Context, learnerID, courseID, topicID uuid.UUID) (bool, error)
	GetRecord(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.ProgressRecord, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error)
}

type curriculumReader interface {
	TopicExists(ctx context.Context, courseID, topicID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records which topics a learner has completed.
type Service struct {
	learners   learnerRepo
	progress   progressRepo
	curriculum curriculumReader
	gate       EngagementGate
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Progress service.
func NewService(
	log *slog.Logger,
	learners learnerRepo,
	progress progressRepo,
	curriculum curriculumReader,
	gate EngagementGate,
	tx txManager,
) *Service {
	return &Service{
		learners:   learners,
		progress:   progress,
		curriculum: curriculum,
		gate:       gate,
		tx:         tx,
		log:        log.With("service", "progress"),
	}
}
