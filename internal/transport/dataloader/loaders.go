package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// newCurriculumBatchFn loads every requested course in one call. Courses the
// store does not return resolve to domain.ErrNotFound.
func newCurriculumBatchFn(source curriculumSource) dataloader.BatchFunc[uuid.UUID, *domain.Curriculum] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Curriculum] {
		curricula, err := source.GetCourses(ctx, keys)
		if err != nil {
			return errorResults[*domain.Curriculum](len(keys), err)
		}

		results := make([]*dataloader.Result[*domain.Curriculum], len(keys))
		for i, key := range keys {
			if c, ok := curricula[key]; ok {
				results[i] = &dataloader.Result[*domain.Curriculum]{Data: c}
			} else {
				results[i] = &dataloader.Result[*domain.Curriculum]{
					Error: fmt.Errorf("course %s: %w", key, domain.ErrNotFound),
				}
			}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
