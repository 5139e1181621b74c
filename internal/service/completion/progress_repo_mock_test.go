package completion

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	GetRecordFunc     func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.ProgressRecord, error)
	ListByLearnerFunc func(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error)

	calls struct {
		GetRecord []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		ListByLearner []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
	}
	lockGetRecord     sync.RWMutex
	lockListByLearner sync.RWMutex
}

func (mock *progressRepoMock) GetRecord(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.ProgressRecord, error) {
	if mock.GetRecordFunc == nil {
		panic("progressRepoMock.GetRecordFunc: method is nil but progressRepo.GetRecord was just called")
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
	mock.lockGetRecord.Lock()
	mock.calls.GetRecord = append(mock.calls.GetRecord, callInfo)
	mock.lockGetRecord.Unlock()
	return mock.GetRecordFunc(ctx, learnerID, courseID)
}

func (mock *progressRepoMock) GetRecordCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockGetRecord.RLock()
	calls := mock.calls.GetRecord
	mock.lockGetRecord.RUnlock()
	return calls
}

func (mock *progressRepoMock) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error) {
	if mock.ListByLearnerFunc == nil {
		panic("progressRepoMock.ListByLearnerFunc: method is nil but progressRepo.ListByLearner was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
	}
	mock.lockListByLearner.Lock()
	mock.calls.ListByLearner = append(mock.calls.ListByLearner, callInfo)
	mock.lockListByLearner.Unlock()
	return mock.ListByLearnerFunc(ctx, learnerID)
}

func (mock *progressRepoMock) ListByLearnerCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
} {
	mock.lockListByLearner.RLock()
	calls := mock.calls.ListByLearner
	mock.lockListByLearner.RUnlock()
	return calls
}
