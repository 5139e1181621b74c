package completion

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

var _ certificateRepo = &certificateRepoMock{}

type certificateRepoMock struct {
	CreateFunc             func(ctx context.Context, c *domain.Certificate) (*domain.Certificate, bool, error)
	GetByLearnerCourseFunc func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.Certificate, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Certificate
		}
		GetByLearnerCourse []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
	}
	lockCreate             sync.RWMutex
	lockGetByLearnerCourse sync.RWMutex
}

func (mock *certificateRepoMock) Create(ctx context.Context, c *domain.Certificate) (*domain.Certificate, bool, error) {
	if mock.CreateFunc == nil {
		panic("certificateRepoMock.CreateFunc: method is nil but certificateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Certificate
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *certificateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Certificate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *certificateRepoMock) GetByLearnerCourse(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.Certificate, error) {
	if mock.GetByLearnerCourseFunc == nil {
		panic("certificateRepoMock.GetByLearnerCourseFunc: method is nil but certificateRepo.GetByLearnerCourse was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
		CourseID  uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
		CourseID:  courseID,
	}
	mock.lockGetByLearnerCourse.Lock()
	mock.calls.GetByLearnerCourse = append(mock.calls.GetByLearnerCourse, callInfo)
	mock.lockGetByLearnerCourse.Unlock()
	return mock.GetByLearnerCourseFunc(ctx, learnerID, courseID)
}

func (mock *certificateRepoMock) GetByLearnerCourseCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockGetByLearnerCourse.RLock()
	calls := mock.calls.GetByLearnerCourse
	mock.lockGetByLearnerCourse.RUnlock()
	return calls
}
