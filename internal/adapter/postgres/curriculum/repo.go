// Package curriculum reads the Course -> Phase -> Week -> Topic tree from
// PostgreSQL. The tables are owned by the content service; this package never
// writes to them.
package curriculum

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// Repo provides read access to curricula.
type Repo struct {
	q postgres.Querier
}

// New creates a new curriculum repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

type courseRow struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Version   int       `db:"version"`
	UpdatedAt time.Time `db:"updated_at"`
}

type phaseRow struct {
	ID       uuid.UUID `db:"id"`
	CourseID uuid.UUID `db:"course_id"`
	Title    string    `db:"title"`
	Position int       `db:"position"`
}

type weekRow struct {
	ID       uuid.UUID `db:"id"`
	PhaseID  uuid.UUID `db:"phase_id"`
	Title    string    `db:"title"`
	Position int       `db:"position"`
}

type topicRow struct {
	ID       uuid.UUID `db:"id"`
	WeekID   uuid.UUID `db:"week_id"`
	Title    string    `db:"title"`
	Position int       `db:"position"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetCourse returns the current curriculum snapshot of a course.
// Returns domain.ErrNotFound if the course does not exist.
func (r *Repo) GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error) {
	curricula, err := r.GetCourses(ctx, []uuid.UUID{courseID})
	if err != nil {
		return nil, err
	}

	c, ok := curricula[courseID]
	if !ok {
		return nil, postgres.MapError(pgx.ErrNoRows, "course", courseID)
	}
	return c, nil
}

// GetCourses loads several curricula in one round trip (batch for DataLoader).
// Unknown ids are absent from the result map.
func (r *Repo) GetCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]*domain.Curriculum, error) {
	result := make(map[uuid.UUID]*domain.Curriculum, len(courseIDs))
	if len(courseIDs) == 0 {
		return result, nil
	}

	queries := []squirrel.Sqlizer{
		postgres.Builder().
			Select("id", "title", "version", "updated_at").
			From("courses").
			Where(squirrel.Eq{"id": courseIDs}),
		postgres.Builder().
			Select("id", "course_id", "title", "position").
			From("phases").
			Where(squirrel.Eq{"course_id": courseIDs}).
			OrderBy("course_id", "position", "id"),
		postgres.Builder().
			Select("w.id", "w.phase_id", "w.title", "w.position").
			From("weeks w").
			Join("phases p ON p.id = w.phase_id").
			Where(squirrel.Eq{"p.course_id": courseIDs}).
			OrderBy("w.phase_id", "w.position", "w.id"),
		postgres.Builder().
			Select("t.id", "t.week_id", "t.title", "t.position").
			From("topics t").
			Join("weeks w ON w.id = t.week_id").
			Join("phases p ON p.id = w.phase_id").
			Where(squirrel.Eq{"p.course_id": courseIDs}).
			OrderBy("t.week_id", "t.position", "t.id"),
	}

	batch := &pgx.Batch{}
	for _, q := range queries {
		sql, args, err := q.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build curriculum query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.q).SendBatch(ctx, batch)
	defer br.Close()

	var (
		courses []courseRow
		phases  []phaseRow
		weeks   []weekRow
		topics  []topicRow
	)
	if err := scanBatch(br, &courses); err != nil {
		return nil, postgres.MapError(err, "courses", "")
	}
	if err := scanBatch(br, &phases); err != nil {
		return nil, postgres.MapError(err, "phases", "")
	}
	if err := scanBatch(br, &weeks); err != nil {
		return nil, postgres.MapError(err, "weeks", "")
	}
	if err := scanBatch(br, &topics); err != nil {
		return nil, postgres.MapError(err, "topics", "")
	}

	for _, c := range courses {
		result[c.ID] = assemble(c, phases, weeks, topics)
	}
	return result, nil
}

// CourseExists reports whether the course is present in the curriculum store.
func (r *Repo) CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.q).
		QueryRow(ctx, courseExistsSQL, courseID).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "course", courseID)
	}
	return exists, nil
}

// TopicExists reports whether topicID belongs to courseID's current curriculum.
func (r *Repo) TopicExists(ctx context.Context, courseID, topicID uuid.UUID) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.q).
		QueryRow(ctx, topicExistsSQL, courseID, topicID).
		Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "topic", topicID)
	}
	return exists, nil
}

const courseExistsSQL = `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`

const topicExistsSQL = `
SELECT EXISTS(
    SELECT 1
    FROM topics t
    JOIN weeks w ON w.id = t.week_id
    JOIN phases p ON p.id = w.phase_id
    WHERE p.course_id = $1 AND t.id = $2
)`

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanBatch[T any](br pgx.BatchResults, dst *[]T) error {
	rows, err := br.Query()
	if err != nil {
		return err
	}
	return pgxscan.ScanAll(dst, rows)
}

// assemble builds one course tree from flat rows already ordered by position.
func assemble(c courseRow, phases []phaseRow, weeks []weekRow, topics []topicRow) *domain.Curriculum {
	topicsByWeek := make(map[uuid.UUID][]domain.Topic)
	for _, t := range topics {
		topicsByWeek[t.WeekID] = append(topicsByWeek[t.WeekID], domain.Topic{
			ID:       t.ID,
			WeekID:   t.WeekID,
			Title:    t.Title,
			Position: t.Position,
		})
	}

	weeksByPhase := make(map[uuid.UUID][]domain.Week)
	for _, w := range weeks {
		weeksByPhase[w.PhaseID] = append(weeksByPhase[w.PhaseID], domain.Week{
			ID:       w.ID,
			PhaseID:  w.PhaseID,
			Title:    w.Title,
			Position: w.Position,
			Topics:   topicsByWeek[w.ID],
		})
	}

	cur := &domain.Curriculum{
		Course: domain.Course{
			ID:        c.ID,
			Title:     c.Title,
			Version:   c.Version,
			UpdatedAt: c.UpdatedAt,
		},
		Phases: []domain.Phase{},
	}
	for _, p := range phases {
		if p.CourseID != c.ID {
			continue
		}
		cur.Phases = append(cur.Phases, domain.Phase{
			ID:       p.ID,
			CourseID: p.CourseID,
			Title:    p.Title,
			Position: p.Position,
			Weeks:    weeksByPhase[p.ID],
		})
	}
	return cur
}
