package entitlement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

type learnerRepo interface {
	EnsureLearner(ctx context.Context, learnerID uuid.UUID) error
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error)
	Grant(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Entitlement, error)
	Revoke(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error)
	IsActive(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error)
	ListActiveCourseIDs(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error)
	MarkCompleted(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error)
}

type curriculumReader interface {
	CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages which courses a learner owns.
type Service struct {
	learners   learnerRepo
	curriculum curriculumReader
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Entitlement service.
func NewService(
	log *slog.Logger,
	learners learnerRepo,
	curriculum curriculumReader,
	tx txManager,
) *Service {
	return &Service{
		learners:   learners,
		curriculum: curriculum,
		tx:         tx,
		log:        log.With("service", "entitlement"),
	}
}

// GrantResult is the new entitlement together with the learner's purchased set
// after the grant.
type GrantResult struct {
	Entitlement        *domain.Entitlement
	PurchasedCourseIDs []uuid.UUID
}

func validatePair(learnerID, courseID uuid.UUID) error {
	var errs []domain.FieldError
	if learnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "learner_id", Message: "required"})
	}
	if courseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
