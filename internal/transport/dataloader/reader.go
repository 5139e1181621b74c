package dataloader

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// CurriculumReader serves curriculum snapshots through the request's loader
// when one is in the context and straight from the source otherwise.
type CurriculumReader struct {
	source curriculumSource
}

// NewCurriculumReader wraps source.
func NewCurriculumReader(source curriculumSource) *CurriculumReader {
	return &CurriculumReader{source: source}
}

// GetCourse returns one curriculum snapshot. Concurrent calls within a request
// are merged into a single batch.
func (r *CurriculumReader) GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error) {
	if l, ok := FromContext(ctx); ok {
		return l.CurriculumByCourseID.Load(ctx, courseID)()
	}
	return r.source.GetCourse(ctx, courseID)
}

// CourseExists reports whether the course is present in the store.
func (r *CurriculumReader) CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error) {
	return r.source.CourseExists(ctx, courseID)
}

// TopicExists reports whether the topic belongs to the course's current curriculum.
func (r *CurriculumReader) TopicExists(ctx context.Context, courseID, topicID uuid.UUID) (bool, error) {
	return r.source.TopicExists(ctx, courseID, topicID)
}
