package doubt

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

type doubtRepo interface {
	Create(ctx context.Context, d *domain.Doubt) (*domain.Doubt, error)
	Resolve(ctx context.Context, doubtID, resolverID uuid.UUID, response string) (*domain.Doubt, error)
	GetByID(ctx context.Context, doubtID uuid.UUID) (*domain.Doubt, error)
	List(ctx context.Context, filter domain.DoubtFilter) ([]domain.Doubt, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.Doubt, error)
}

type learnerRepo interface {
	IsActive(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error)
}

const (
	MaxTopicTitleLength = 200
	MaxResponseLength   = 10000
)

// Config holds doubt limits.
type Config struct {
	QueryMaxLength   int
	ListDefaultLimit int
	ListMaxLimit     int
}

// Service runs the doubt workflow: learners submit, mentors resolve.
type Service struct {
	doubts   doubtRepo
	learners learnerRepo
	cfg      Config
	log      *slog.Logger
}

// NewService creates a new Doubt service.
func NewService(
	log *slog.Logger,
	doubts doubtRepo,
	learners learnerRepo,
	cfg Config,
) *Service {
	if cfg.QueryMaxLength <= 0 {
		cfg.QueryMaxLength = 2000
	}
	if cfg.ListMaxLimit <= 0 {
		cfg.ListMaxLimit = 200
	}
	if cfg.ListDefaultLimit <= 0 || cfg.ListDefaultLimit > cfg.ListMaxLimit {
		cfg.ListDefaultLimit = min(50, cfg.ListMaxLimit)
	}
	return &Service{
		doubts:   doubts,
		learners: learners,
		cfg:      cfg,
		log:      log.With("service", "doubt"),
	}
}
