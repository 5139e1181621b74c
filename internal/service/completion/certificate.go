package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// IssueCertificate issues the learner's certificate for the course. A
// certificate is issued at most once per (learner, course); later calls return
// the existing one. Returns domain.ErrNotEntitled if the learner does not own
// the course and domain.ErrNotEligible if completion is below the threshold.
func (s *Service) IssueCertificate(ctx context.Context, courseID, learnerID uuid.UUID) (*IssueResult, error) {
	if err := validatePair(courseID, learnerID); err != nil {
		return nil, err
	}

	active, err := s.learners.IsActive(ctx, learnerID, courseID)
	if err != nil {
		return nil, fmt.Errorf("check entitlement: %w", err)
	}
	if !active {
		return nil, domain.ErrNotEntitled
	}

	existing, err := s.certificates.GetByLearnerCourse(ctx, learnerID, courseID)
	if err == nil {
		return &IssueResult{Certificate: existing}, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get certificate: %w", err)
	}

	eligible, stats, err := s.IsCertificateEligible(ctx, courseID, learnerID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, fmt.Errorf("completed %d%% of %d%%: %w", stats.Percent, s.cfg.CertificateThreshold, domain.ErrNotEligible)
	}

	id := uuid.New()
	cert, created, err := s.certificates.Create(ctx, &domain.Certificate{
		ID:        id,
		LearnerID: learnerID,
		CourseID:  courseID,
		Number:    s.certificateNumber(id),
		Percent:   stats.Percent,
	})
	if err != nil {
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "certificate issued",
			slog.String("learner_id", learnerID.String()),
			slog.String("course_id", courseID.String()),
			slog.String("number", cert.Number),
			slog.Int("percent", cert.Percent),
		)
	}

	return &IssueResult{Certificate: cert, Issued: created}, nil
}

// certificateNumber formats CERT-<YYYYMMDD>-<8 hex>.
func (s *Service) certificateNumber(id uuid.UUID) string {
	return fmt.Sprintf("CERT-%s-%X", s.now().UTC().Format("20060102"), id[:4])
}
