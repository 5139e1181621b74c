package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// SeedCourse inserts a course with phases*weeks*topics topics and returns the
// curriculum snapshot as it was written, plus the topic ids in curriculum order.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, phases, weeks, topics int) (domain.Curriculum, []uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Curriculum{
		Course: domain.Course{ID: uuid.New(), Title: "Course " + uuid.New().String()[:8], Version: 1, UpdatedAt: now},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO courses (id, title, version, updated_at) VALUES ($1, $2, $3, $4)`,
		c.Course.ID, c.Course.Title, c.Course.Version, c.Course.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse insert course: %v", err)
	}

	var ids []uuid.UUID
	for p := 0; p < phases; p++ {
		phase := domain.Phase{ID: uuid.New(), CourseID: c.Course.ID, Title: fmt.Sprintf("Phase %d", p+1), Position: p}
		if _, err := pool.Exec(ctx,
			`INSERT INTO phases (id, course_id, title, position) VALUES ($1, $2, $3, $4)`,
			phase.ID, phase.CourseID, phase.Title, phase.Position,
		); err != nil {
			t.Fatalf("testhelper: SeedCourse insert phase: %v", err)
		}

		for w := 0; w < weeks; w++ {
			week := domain.Week{ID: uuid.New(), PhaseID: phase.ID, Title: fmt.Sprintf("Week %d", w+1), Position: w}
			if _, err := pool.Exec(ctx,
				`INSERT INTO weeks (id, phase_id, title, position) VALUES ($1, $2, $3, $4)`,
				week.ID, week.PhaseID, week.Title, week.Position,
			); err != nil {
				t.Fatalf("testhelper: SeedCourse insert week: %v", err)
			}

			for tp := 0; tp < topics; tp++ {
				topic := domain.Topic{ID: uuid.New(), WeekID: week.ID, Title: fmt.Sprintf("Topic %d.%d.%d", p+1, w+1, tp+1), Position: tp}
				if _, err := pool.Exec(ctx,
					`INSERT INTO topics (id, week_id, title, position) VALUES ($1, $2, $3, $4)`,
					topic.ID, topic.WeekID, topic.Title, topic.Position,
				); err != nil {
					t.Fatalf("testhelper: SeedCourse insert topic: %v", err)
				}
				week.Topics = append(week.Topics, topic)
				ids = append(ids, topic.ID)
			}
			phase.Weeks = append(phase.Weeks, week)
		}
		c.Phases = append(c.Phases, phase)
	}

	return c, ids
}

// DeleteTopic removes a topic from the curriculum, simulating a content edit.
func DeleteTopic(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `DELETE FROM topics WHERE id = $1`, topicID); err != nil {
		t.Fatalf("testhelper: DeleteTopic: %v", err)
	}
}

// SeedLearner registers a new learner id.
func SeedLearner(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	if _, err := pool.Exec(context.Background(), `INSERT INTO learners (id) VALUES ($1)`, id); err != nil {
		t.Fatalf("testhelper: SeedLearner: %v", err)
	}
	return id
}

// SeedEntitlement grants courseID to learnerID. A non-nil revokedAt stores a
// revoked entitlement.
func SeedEntitlement(t *testing.T, pool *pgxpool.Pool, learnerID, courseID uuid.UUID, revokedAt *time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entitlements (learner_id, course_id, revoked_at) VALUES ($1, $2, $3)`,
		learnerID, courseID, revokedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntitlement: %v", err)
	}
}

// SeedDoubt inserts a pending doubt for an entitled learner.
func SeedDoubt(t *testing.T, pool *pgxpool.Pool, learnerID, courseID, topicID uuid.UUID, query string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO doubts (id, learner_id, course_id, topic_id, topic_title, query)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, learnerID, courseID, topicID, "Intro", query,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDoubt: %v", err)
	}
	return id
}
