package completion

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ learnerRepo = &learnerRepoMock{}

type learnerRepoMock struct {
	IsActiveFunc            func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (bool, error)
	ListActiveCourseIDsFunc func(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		IsActive []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		ListActiveCourseIDs []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
	}
	lockIsActive            sync.RWMutex
	lockListActiveCourseIDs sync.RWMutex
}

func (mock *learnerRepoMock) IsActive(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (bool, error) {
	if mock.IsActiveFunc == nil {
		panic("learnerRepoMock.IsActiveFunc: method is nil but learnerRepo.IsActive was just called")
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
	mock.lockIsActive.Lock()
	mock.calls.IsActive = append(mock.calls.IsActive, callInfo)
	mock.lockIsActive.Unlock()
	return mock.IsActiveFunc(ctx, learnerID, courseID)
}

func (mock *learnerRepoMock) IsActiveCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockIsActive.RLock()
	calls := mock.calls.IsActive
	mock.lockIsActive.RUnlock()
	return calls
}

func (mock *learnerRepoMock) ListActiveCourseIDs(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListActiveCourseIDsFunc == nil {
		panic("learnerRepoMock.ListActiveCourseIDsFunc: method is nil but learnerRepo.ListActiveCourseIDs was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
	}
	mock.lockListActiveCourseIDs.Lock()
	mock.calls.ListActiveCourseIDs = append(mock.calls.ListActiveCourseIDs, callInfo)
	mock.lockListActiveCourseIDs.Unlock()
	return mock.ListActiveCourseIDsFunc(ctx, learnerID)
}

func (mock *learnerRepoMock) ListActiveCourseIDsCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
} {
	mock.lockListActiveCourseIDs.RLock()
	calls := mock.calls.ListActiveCourseIDs
	mock.lockListActiveCourseIDs.RUnlock()
	return calls
}
