// Package dataloader provides per-request DataLoaders that batch curriculum
// reads made while serving one request into a single store call.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type curriculumSource interface {
	GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error)
	GetCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]*domain.Curriculum, error)
	CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error)
	TopicExists(ctx context.Context, courseID, topicID uuid.UUID) (bool, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	CurriculumByCourseID *dataloader.Loader[uuid.UUID, *domain.Curriculum]
}

// NewLoaders creates loaders backed by source. Must be called per request:
// loaders cache results for their lifetime.
func NewLoaders(source curriculumSource) *Loaders {
	return &Loaders{
		CurriculumByCourseID: newLoader(newCurriculumBatchFn(source)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. Callers outside an HTTP
// request (commands, tests) have none.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}
