// Package progress stores per-(learner, course) completed topic sets. A set is
// represented by one row per member so that add and remove are single
// idempotent statements keyed by the primary key.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new progress repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type progressRow struct {
	CourseID    uuid.UUID `db:"course_id"`
	TopicID     uuid.UUID `db:"topic_id"`
	CompletedAt time.Time `db:"completed_at"`
}

const addTopicSQL = `
INSERT INTO progress_topics (learner_id, course_id, topic_id)
VALUES ($1, $2, $3)
ON CONFLICT (learner_id, course_id, topic_id) DO NOTHING`

const removeTopicSQL = `
DELETE FROM progress_topics
WHERE learner_id = $1 AND course_id = $2 AND topic_id = $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// AddTopic inserts topicID into the (learner, course) set.
// Returns false when the topic was already a member.
func (r *Repo) AddTopic(ctx context.Context, learnerID, courseID, topicID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, addTopicSQL, learnerID, courseID, topicID)
	if err != nil {
		return false, postgres.MapError(err, "progress", courseID)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveTopic deletes topicID from the (learner, course) set.
// Returns false when the topic was not a member.
func (r *Repo) RemoveTopic(ctx context.Context, learnerID, courseID, topicID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, removeTopicSQL, learnerID, courseID, topicID)
	if err != nil {
		return false, postgres.MapError(err, "progress", courseID)
	}
	return tag.RowsAffected() == 1, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetRecord returns the completed-topic set of one (learner, course) pair.
// A pair without progress yields a record with an empty set.
func (r *Repo) GetRecord(ctx context.Context, learnerID, courseID uuid.UUID) (*domain.ProgressRecord, error) {
	query := postgres.Builder().
		Select("course_id", "topic_id", "completed_at").
		From("progress_topics").
		Where(squirrel.Eq{"learner_id": learnerID, "course_id": courseID})

	rows, err := r.selectRows(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "progress", courseID)
	}

	record := domain.NewProgressRecord(learnerID, courseID)
	for _, row := range rows {
		record.CompletedTopicIDs.Add(row.TopicID)
		if row.CompletedAt.After(record.UpdatedAt) {
			record.UpdatedAt = row.CompletedAt
		}
	}
	return record, nil
}

// ListByLearner returns every non-empty progress record of the learner,
// ordered by course id. Returns an empty slice (not nil) when there is none.
func (r *Repo) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error) {
	query := postgres.Builder().
		Select("course_id", "topic_id", "completed_at").
		From("progress_topics").
		Where(squirrel.Eq{"learner_id": learnerID}).
		OrderBy("course_id", "completed_at")

	rows, err := r.selectRows(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "learner", learnerID)
	}

	records := []domain.ProgressRecord{}
	index := make(map[uuid.UUID]int)
	for _, row := range rows {
		i, ok := index[row.CourseID]
		if !ok {
			records = append(records, *domain.NewProgressRecord(learnerID, row.CourseID))
			i = len(records) - 1
			index[row.CourseID] = i
		}
		records[i].CompletedTopicIDs.Add(row.TopicID)
		if row.CompletedAt.After(records[i].UpdatedAt) {
			records[i].UpdatedAt = row.CompletedAt
		}
	}
	return records, nil
}

func (r *Repo) selectRows(ctx context.Context, query squirrel.SelectBuilder) ([]progressRow, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress query: %w", err)
	}

	var rows []progressRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, sql, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
