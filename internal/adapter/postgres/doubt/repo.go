// Package doubt implements the Doubt repository using PostgreSQL.
// Resolution is a single conditional UPDATE so that concurrent mentors
// cannot both answer the same doubt.
package doubt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Repo provides doubt persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new doubt repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

var columns = []string{
	"id", "learner_id", "course_id", "topic_id", "topic_title", "query",
	"status", "response", "resolver_id", "created_at", "resolved_at",
}

type doubtRow struct {
	ID         uuid.UUID  `db:"id"`
	LearnerID  uuid.UUID  `db:"learner_id"`
	CourseID   uuid.UUID  `db:"course_id"`
	TopicID    uuid.UUID  `db:"topic_id"`
	TopicTitle string     `db:"topic_title"`
	Query      string     `db:"query"`
	Status     string     `db:"status"`
	Response   *string    `db:"response"`
	ResolverID *uuid.UUID `db:"resolver_id"`
	CreatedAt  time.Time  `db:"created_at"`
	ResolvedAt *time.Time `db:"resolved_at"`
}

func (r doubtRow) toDomain() *domain.Doubt {
	return &domain.Doubt{
		ID:         r.ID,
		LearnerID:  r.LearnerID,
		CourseID:   r.CourseID,
		TopicID:    r.TopicID,
		TopicTitle: r.TopicTitle,
		Query:      r.Query,
		Status:     domain.DoubtStatus(r.Status),
		Response:   r.Response,
		ResolverID: r.ResolverID,
		CreatedAt:  r.CreatedAt,
		ResolvedAt: r.ResolvedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending doubt and returns it with server-assigned fields.
func (r *Repo) Create(ctx context.Context, d *domain.Doubt) (*domain.Doubt, error) {
	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().
		Insert("doubts").
		Columns("id", "learner_id", "course_id", "topic_id", "topic_title", "query", "status").
		Values(id, d.LearnerID, d.CourseID, d.TopicID, d.TopicTitle, d.Query, string(domain.DoubtStatusPending)).
		Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert doubt: %w", err)
	}

	var row doubtRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "doubt", id)
	}
	return row.toDomain(), nil
}

// Resolve moves a pending doubt to resolved, storing the response and the
// resolver. The transition is a compare-and-swap on status: if the doubt is
// already resolved, domain.ErrAlreadyResolved is returned and nothing is
// written. Returns domain.ErrNotFound if the doubt does not exist.
func (r *Repo) Resolve(ctx context.Context, doubtID, resolverID uuid.UUID, response string) (*domain.Doubt, error) {
	query := postgres.Builder().
		Update("doubts").
		Set("status", string(domain.DoubtStatusResolved)).
		Set("response", response).
		Set("resolver_id", resolverID).
		Set("resolved_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": doubtID, "status": string(domain.DoubtStatusPending)}).
		Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve doubt: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.q)

	var row doubtRow
	err = pgxscan.Get(ctx, q, &row, sql, args...)
	if err == nil {
		return row.toDomain(), nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "doubt", doubtID)
	}

	// Zero rows: either the doubt does not exist or another resolution won.
	var status string
	if err := q.QueryRow(ctx, `SELECT status FROM doubts WHERE id = $1`, doubtID).Scan(&status); err != nil {
		return nil, postgres.MapError(err, "doubt", doubtID)
	}
	return nil, fmt.Errorf("doubt %s: %w", doubtID, domain.ErrAlreadyResolved)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a doubt by primary key.
func (r *Repo) GetByID(ctx context.Context, doubtID uuid.UUID) (*domain.Doubt, error) {
	query := postgres.Builder().
		Select(columns...).
		From("doubts").
		Where(squirrel.Eq{"id": doubtID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get doubt: %w", err)
	}

	var row doubtRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "doubt", doubtID)
	}
	return row.toDomain(), nil
}

// List returns doubts newest first, optionally narrowed by status.
// The caller is responsible for normalizing Limit.
func (r *Repo) List(ctx context.Context, filter domain.DoubtFilter) ([]domain.Doubt, error) {
	query := postgres.Builder().
		Select(columns...).
		From("doubts").
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	return r.selectDoubts(ctx, query)
}

// ListByLearner returns all doubts of one learner, newest first.
func (r *Repo) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.Doubt, error) {
	query := postgres.Builder().
		Select(columns...).
		From("doubts").
		Where(squirrel.Eq{"learner_id": learnerID}).
		OrderBy("created_at DESC", "id DESC")

	return r.selectDoubts(ctx, query)
}

func (r *Repo) selectDoubts(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Doubt, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list doubts: %w", err)
	}

	var rows []doubtRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "doubts", "")
	}

	doubts := make([]domain.Doubt, len(rows))
	for i, row := range rows {
		doubts[i] = *row.toDomain()
	}
	return doubts, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
