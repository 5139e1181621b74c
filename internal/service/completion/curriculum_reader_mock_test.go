package completion

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

var _ curriculumReader = &curriculumReaderMock{}

type curriculumReaderMock struct {
	GetCourseFunc func(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error)

	calls struct {
		GetCourse []struct {
			Ctx      context.Context
			CourseID uuid.UUID
		}
	}
	lockGetCourse sync.RWMutex
}

func (mock *curriculumReaderMock) GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error) {
	if mock.GetCourseFunc == nil {
		panic("curriculumReaderMock.GetCourseFunc: method is nil but curriculumReader.GetCourse was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID uuid.UUID
	}{
		Ctx:      ctx,
		CourseID: courseID,
	}
	mock.lockGetCourse.Lock()
	mock.calls.GetCourse = append(mock.calls.GetCourse, callInfo)
	mock.lockGetCourse.Unlock()
	return mock.GetCourseFunc(ctx, courseID)
}

func (mock *curriculumReaderMock) GetCourseCalls() []struct {
	Ctx      context.Context
	CourseID uuid.UUID
} {
	mock.lockGetCourse.RLock()
	calls := mock.calls.GetCourse
	mock.lockGetCourse.RUnlock()
	return calls
}
