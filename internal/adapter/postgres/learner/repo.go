// Package learner implements learner, entitlement and course-completion
// persistence using PostgreSQL.
package learner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Repo provides learner and entitlement persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new learner repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type entitlementRow struct {
	LearnerID uuid.UUID  `db:"learner_id"`
	CourseID  uuid.UUID  `db:"course_id"`
	GrantedAt time.Time  `db:"granted_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r entitlementRow) toDomain() *domain.Entitlement {
	return &domain.Entitlement{
		LearnerID: r.LearnerID,
		CourseID:  r.CourseID,
		GrantedAt: r.GrantedAt,
		RevokedAt: r.RevokedAt,
	}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const ensureLearnerSQL = `INSERT INTO learners (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`

// grantSQL inserts a new entitlement or re-activates a revoked one. An active
// entitlement makes the conflict branch a no-op and RETURNING yields no row.
const grantSQL = `
INSERT INTO entitlements (learner_id, course_id)
VALUES ($1, $2)
ON CONFLICT (learner_id, course_id) DO UPDATE
    SET granted_at = now(), revoked_at = NULL
    WHERE entitlements.revoked_at IS NOT NULL
RETURNING learner_id, course_id, granted_at, revoked_at`

const getForUpdateSQL = `
SELECT learner_id, course_id, granted_at, revoked_at
FROM entitlements
WHERE learner_id = $1 AND course_id = $2
FOR UPDATE`

const isActiveSQL = `
SELECT EXISTS(
    SELECT 1 FROM entitlements
    WHERE learner_id = $1 AND course_id = $2 AND revoked_at IS NULL
)`

const markCompletedSQL = `
INSERT INTO course_completions (learner_id, course_id)
VALUES ($1, $2)
ON CONFLICT (learner_id, course_id) DO NOTHING`

// ---------------------------------------------------------------------------
// Learner
// ---------------------------------------------------------------------------

// EnsureLearner registers the learner id if it is not known yet. Identities are
// owned by the authentication collaborator; the ledger records them lazily.
func (r *Repo) EnsureLearner(ctx context.Context, learnerID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, ensureLearnerSQL, learnerID); err != nil {
		return postgres.MapError(err, "learner", learnerID)
	}
	return nil
}

// GetLearner returns the learner with purchased (active) and completed course ids.
// Returns domain.ErrNotFound if the learner was never recorded.
func (r *Repo) GetLearner(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	l := &domain.Learner{ID: learnerID}
	if err := q.QueryRow(ctx, `SELECT created_at FROM learners WHERE id = $1`, learnerID).Scan(&l.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "learner", learnerID)
	}

	var err error
	if l.PurchasedCourseIDs, err = r.ListActiveCourseIDs(ctx, learnerID); err != nil {
		return nil, err
	}
	if l.CompletedCourseIDs, err = r.ListCompletedCourseIDs(ctx, learnerID); err != nil {
		return nil, err
	}
	return l, nil
}

// ---------------------------------------------------------------------------
// Entitlements
// ---------------------------------------------------------------------------

// Grant creates or re-activates the (learner, course) entitlement in a single
// statement. Returns domain.ErrAlreadyEntitled if it is already active and
// domain.ErrNotFound if the course or learner does not exist.
func (r *Repo) Grant(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Entitlement, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.q).Query(ctx, grantSQL, learnerID, courseID)
	if err != nil {
		return nil, postgres.MapError(err, "entitlement", courseID)
	}

	var row entitlementRow
	if err := pgxscan.ScanOne(&row, rows); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("entitlement %s: %w", courseID, domain.ErrAlreadyEntitled)
		}
		return nil, postgres.MapError(err, "entitlement", courseID)
	}
	return row.toDomain(), nil
}

// Get returns the entitlement row, active or revoked.
// Returns domain.ErrNotFound if the learner never held it.
func (r *Repo) Get(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Entitlement, error) {
	query := postgres.Builder().
		Select("learner_id", "course_id", "granted_at", "revoked_at").
		From("entitlements").
		Where(squirrel.Eq{"learner_id": learnerID, "course_id": courseID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get entitlement: %w", err)
	}

	var row entitlementRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entitlement", courseID)
	}
	return row.toDomain(), nil
}

// GetForUpdate returns the entitlement row locked until the surrounding
// transaction ends. Every progress mutation for a (learner, course) pair takes
// this lock first, which serializes concurrent toggles on the same pair.
// Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.Entitlement, error) {
	if !postgres.InTx(ctx) {
		return nil, errors.New("entitlement lock requires a transaction")
	}

	var row entitlementRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, getForUpdateSQL, learnerID, courseID); err != nil {
		return nil, postgres.MapError(err, "entitlement", courseID)
	}
	return row.toDomain(), nil
}

// IsActive reports whether the learner currently owns the course.
func (r *Repo) IsActive(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error) {
	var active bool
	err := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, isActiveSQL, learnerID, courseID).Scan(&active)
	if err != nil {
		return false, postgres.MapError(err, "entitlement", courseID)
	}
	return active, nil
}

// Revoke marks every active entitlement of the learner among courseIDs as
// revoked. Ids that are absent or already revoked are ignored. Returns the
// number of entitlements revoked.
func (r *Repo) Revoke(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}

	query := postgres.Builder().
		Update("entitlements").
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"learner_id": learnerID, "course_id": courseIDs}).
		Where("revoked_at IS NULL")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build revoke: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "learner", learnerID)
	}
	return tag.RowsAffected(), nil
}

// ListActiveCourseIDs returns the learner's purchased courses in grant order.
// Returns an empty slice (not nil) when the learner owns nothing.
func (r *Repo) ListActiveCourseIDs(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error) {
	query := postgres.Builder().
		Select("course_id").
		From("entitlements").
		Where(squirrel.Eq{"learner_id": learnerID}).
		Where("revoked_at IS NULL").
		OrderBy("granted_at", "course_id")

	return r.selectIDs(ctx, query, learnerID)
}

// ---------------------------------------------------------------------------
// Course completions
// ---------------------------------------------------------------------------

// MarkCompleted sets the manual completed flag. Returns false if it was already set.
func (r *Repo) MarkCompleted(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, markCompletedSQL, learnerID, courseID)
	if err != nil {
		return false, postgres.MapError(err, "course_completion", courseID)
	}
	return tag.RowsAffected() == 1, nil
}

// ListCompletedCourseIDs returns courses flagged completed, oldest first.
func (r *Repo) ListCompletedCourseIDs(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error) {
	query := postgres.Builder().
		Select("course_id").
		From("course_completions").
		Where(squirrel.Eq{"learner_id": learnerID}).
		OrderBy("completed_at", "course_id")

	return r.selectIDs(ctx, query, learnerID)
}

func (r *Repo) selectIDs(ctx context.Context, query squirrel.SelectBuilder, learnerID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build course id query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.q).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "learner", learnerID)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "learner", learnerID)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}
