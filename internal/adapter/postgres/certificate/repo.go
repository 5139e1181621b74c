// Package certificate implements certificate persistence using PostgreSQL.
// At most one certificate exists per (learner, course).
package certificate

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Repo provides certificate persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new certificate repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type certificateRow struct {
	ID        uuid.UUID `db:"id"`
	LearnerID uuid.UUID `db:"learner_id"`
	CourseID  uuid.UUID `db:"course_id"`
	Number    string    `db:"number"`
	Percent   int       `db:"percent"`
	IssuedAt  time.Time `db:"issued_at"`
}

func (r certificateRow) toDomain() *domain.Certificate {
	return &domain.Certificate{
		ID:        r.ID,
		LearnerID: r.LearnerID,
		CourseID:  r.CourseID,
		Number:    r.Number,
		Percent:   r.Percent,
		IssuedAt:  r.IssuedAt,
	}
}

const createSQL = `
INSERT INTO certificates (id, learner_id, course_id, number, percent)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (learner_id, course_id) DO NOTHING
RETURNING id, learner_id, course_id, number, percent, issued_at`

const getByLearnerCourseSQL = `
SELECT id, learner_id, course_id, number, percent, issued_at
FROM certificates
WHERE learner_id = $1 AND course_id = $2`

// Create stores a new certificate. If one already exists for the pair, the
// existing certificate is returned and created is false.
func (r *Repo) Create(ctx context.Context, c *domain.Certificate) (cert *domain.Certificate, created bool, err error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	q := postgres.QuerierFromCtx(ctx, r.q)

	var row certificateRow
	err = pgxscan.Get(ctx, q, &row, createSQL, id, c.LearnerID, c.CourseID, c.Number, c.Percent)
	if err == nil {
		return row.toDomain(), true, nil
	}
	if !pgxscan.NotFound(err) {
		return nil, false, postgres.MapError(err, "certificate", c.CourseID)
	}

	existing, err := r.GetByLearnerCourse(ctx, c.LearnerID, c.CourseID)
	if err != nil {
		return nil, false, fmt.Errorf("load existing certificate: %w", err)
	}
	return existing, false, nil
}

// GetByLearnerCourse returns the certificate issued for the pair.
// Returns domain.ErrNotFound if none was issued.
func (r *Repo) GetByLearnerCourse(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Certificate, error) {
	var row certificateRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, getByLearnerCourseSQL, learnerID, courseID)
	if err != nil {
		return nil, postgres.MapError(err, "certificate", courseID)
	}
	return row.toDomain(), nil
}
