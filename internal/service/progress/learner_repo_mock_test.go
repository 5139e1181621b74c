package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

var _ learnerRepo = &learnerRepoMock{}

type learnerRepoMock struct {
	GetForUpdateFunc func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.Entitlement, error)

	calls struct {
		GetForUpdate []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
	}
	lockGetForUpdate sync.RWMutex
}

func (mock *learnerRepoMock) GetForUpdate(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.Entitlement, error) {
	if mock.GetForUpdateFunc == nil {
		panic("learnerRepoMock.GetForUpdateFunc: method is nil but learnerRepo.GetForUpdate was just called")
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
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, learnerID, courseID)
}

func (mock *learnerRepoMock) GetForUpdateCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}
