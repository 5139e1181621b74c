package completion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

type curriculumReader interface {
	GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error)
}

type progressRepo interface {
	GetRecord(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.ProgressRecord, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error)
}

type learnerRepo interface {
	IsActive(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error)
	ListActiveCourseIDs(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error)
}

type certificateRepo interface {
	Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, bool, error)
	GetByLearnerCourse(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Certificate, error)
}

// Config holds the completion thresholds.
type Config struct {
	// CertificateThreshold is the minimum percent for a certificate.
	CertificateThreshold int
	// DashboardConcurrency bounds parallel curriculum loads per dashboard.
	DashboardConcurrency int
}

// Service derives completion figures and issues certificates.
type Service struct {
	curriculum   curriculumReader
	progress     progressRepo
	learners     learnerRepo
	certificates certificateRepo
	cfg          Config
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new Completion service.
func NewService(
	log *slog.Logger,
	curriculum curriculumReader,
	progress progressRepo,
	learners learnerRepo,
	certificates certificateRepo,
	cfg Config,
) *Service {
	if cfg.CertificateThreshold <= 0 {
		cfg.CertificateThreshold = domain.CertificateThresholdPercent
	}
	if cfg.DashboardConcurrency <= 0 {
		cfg.DashboardConcurrency = 1
	}
	return &Service{
		curriculum:   curriculum,
		progress:     progress,
		learners:     learners,
		certificates: certificates,
		cfg:          cfg,
		now:          time.Now,
		log:          log.With("service", "completion"),
	}
}

// IssueResult is the outcome of IssueCertificate.
type IssueResult struct {
	Certificate *domain.Certificate
	// Issued is false when an existing certificate was returned.
	Issued bool
}
