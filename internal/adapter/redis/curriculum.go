package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

const curriculumKeyPrefix = "curriculum:"

// curriculumSource is the authoritative reader being cached.
type curriculumSource interface {
	GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error)
	GetCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]*domain.Curriculum, error)
	CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error)
	TopicExists(ctx context.Context, courseID, topicID uuid.UUID) (bool, error)
}

// CurriculumCache is a read-through cache of curriculum snapshots. A cached
// snapshot may lag behind the content service by at most ttl, so only
// display reads are served from it. Existence checks that gate writes always
// hit the source.
type CurriculumCache struct {
	client *redis.Client
	source curriculumSource
	ttl    time.Duration
	log    *slog.Logger
}

// NewCurriculumCache wraps source with a Redis-backed cache.
func NewCurriculumCache(client *redis.Client, source curriculumSource, ttl time.Duration, logger *slog.Logger) *CurriculumCache {
	return &CurriculumCache{
		client: client,
		source: source,
		ttl:    ttl,
		log:    logger.With("component", "curriculum_cache"),
	}
}

func curriculumKey(courseID uuid.UUID) string {
	return curriculumKeyPrefix + courseID.String()
}

// GetCourse returns the cached snapshot or loads and caches it.
func (c *CurriculumCache) GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error) {
	data, err := c.client.Get(ctx, curriculumKey(courseID)).Bytes()
	switch {
	case err == nil:
		var cur domain.Curriculum
		if err := json.Unmarshal(data, &cur); err == nil {
			return &cur, nil
		}
		c.log.WarnContext(ctx, "discarding undecodable curriculum snapshot", slog.String("course_id", courseID.String()))
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "curriculum cache read failed", slog.String("error", err.Error()))
	}

	cur, err := c.source.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, map[uuid.UUID]*domain.Curriculum{courseID: cur})
	return cur, nil
}

// GetCourses serves hits with one MGET and loads the misses from the source
// in a single batch.
func (c *CurriculumCache) GetCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]*domain.Curriculum, error) {
	result := make(map[uuid.UUID]*domain.Curriculum, len(courseIDs))
	if len(courseIDs) == 0 {
		return result, nil
	}

	keys := make([]string, len(courseIDs))
	for i, id := range courseIDs {
		keys[i] = curriculumKey(id)
	}

	misses := courseIDs
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.log.WarnContext(ctx, "curriculum cache batch read failed", slog.String("error", err.Error()))
	} else {
		misses = make([]uuid.UUID, 0, len(courseIDs))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				misses = append(misses, courseIDs[i])
				continue
			}
			var cur domain.Curriculum
			if err := json.Unmarshal([]byte(s), &cur); err != nil {
				misses = append(misses, courseIDs[i])
				continue
			}
			result[courseIDs[i]] = &cur
		}
	}

	if len(misses) == 0 {
		return result, nil
	}

	loaded, err := c.source.GetCourses(ctx, misses)
	if err != nil {
		return nil, err
	}
	for id, cur := range loaded {
		result[id] = cur
	}
	c.store(ctx, loaded)
	return result, nil
}

// CourseExists asks the source directly.
func (c *CurriculumCache) CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error) {
	return c.source.CourseExists(ctx, courseID)
}

// TopicExists asks the source directly: a topic added or removed after the
// snapshot was cached must be seen by the next mark.
func (c *CurriculumCache) TopicExists(ctx context.Context, courseID, topicID uuid.UUID) (bool, error) {
	return c.source.TopicExists(ctx, courseID, topicID)
}

// Invalidate drops cached snapshots so the next read goes to the source.
func (c *CurriculumCache) Invalidate(ctx context.Context, courseIDs ...uuid.UUID) error {
	if len(courseIDs) == 0 {
		return nil
	}
	keys := make([]string, len(courseIDs))
	for i, id := range courseIDs {
		keys[i] = curriculumKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate curriculum cache: %w", err)
	}
	return nil
}

// store writes snapshots in one pipeline. Failures are logged, not returned:
// a cache write must never fail a read.
func (c *CurriculumCache) store(ctx context.Context, curricula map[uuid.UUID]*domain.Curriculum) {
	if len(curricula) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for id, cur := range curricula {
		data, err := json.Marshal(cur)
		if err != nil {
			c.log.WarnContext(ctx, "encode curriculum snapshot", slog.String("error", err.Error()))
			continue
		}
		pipe.Set(ctx, curriculumKey(id), data, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.WarnContext(ctx, "curriculum cache write failed", slog.String("error", err.Error()))
	}
}
