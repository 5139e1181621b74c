package entitlement

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

var _ learnerRepo = &learnerRepoMock{}

type learnerRepoMock struct {
	EnsureLearnerFunc       func(ctx context.Context, learnerID uuid.UUID) error
	GetLearnerFunc          func(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error)
	GrantFunc               func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.Entitlement, error)
	RevokeFunc              func(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error)
	IsActiveFunc            func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (bool, error)
	ListActiveCourseIDsFunc func(ctx context.Context, learnerID uuid.UUID) ([]uuid.UUID, error)
	MarkCompletedFunc       func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (bool, error)

	calls struct {
		EnsureLearner []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
		GetLearner []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
		Grant []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		Revoke []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseIDs []uuid.UUID
		}
		IsActive []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		ListActiveCourseIDs []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
		MarkCompleted []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
	}
	lockEnsureLearner       sync.RWMutex
	lockGetLearner          sync.RWMutex
	lockGrant               sync.RWMutex
	lockRevoke              sync.RWMutex
	lockIsActive            sync.RWMutex
	lockListActiveCourseIDs sync.RWMutex
	lockMarkCompleted       sync.RWMutex
}

func (mock *learnerRepoMock) EnsureLearner(ctx context.Context, learnerID uuid.UUID) error {
	if mock.EnsureLearnerFunc == nil {
		panic("learnerRepoMock.EnsureLearnerFunc: method is nil but learnerRepo.EnsureLearner was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
	}
	mock.lockEnsureLearner.Lock()
	mock.calls.EnsureLearner = append(mock.calls.EnsureLearner, callInfo)
	mock.lockEnsureLearner.Unlock()
	return mock.EnsureLearnerFunc(ctx, learnerID)
}

func (mock *learnerRepoMock) EnsureLearnerCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
} {
	mock.lockEnsureLearner.RLock()
	calls := mock.calls.EnsureLearner
	mock.lockEnsureLearner.RUnlock()
	return calls
}

func (mock *learnerRepoMock) GetLearner(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error) {
	if mock.GetLearnerFunc == nil {
		panic("learnerRepoMock.GetLearnerFunc: method is nil but learnerRepo.GetLearner was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
	}
	mock.lockGetLearner.Lock()
	mock.calls.GetLearner = append(mock.calls.GetLearner, callInfo)
	mock.lockGetLearner.Unlock()
	return mock.GetLearnerFunc(ctx, learnerID)
}

func (mock *learnerRepoMock) GetLearnerCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
} {
	mock.lockGetLearner.RLock()
	calls := mock.calls.GetLearner
	mock.lockGetLearner.RUnlock()
	return calls
}

func (mock *learnerRepoMock) Grant(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.Entitlement, error) {
	if mock.GrantFunc == nil {
		panic("learnerRepoMock.GrantFunc: method is nil but learnerRepo.Grant was just called")
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
	mock.lockGrant.Lock()
	mock.calls.Grant = append(mock.calls.Grant, callInfo)
	mock.lockGrant.Unlock()
	return mock.GrantFunc(ctx, learnerID, courseID)
}

func (mock *learnerRepoMock) GrantCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockGrant.RLock()
	calls := mock.calls.Grant
	mock.lockGrant.RUnlock()
	return calls
}

func (mock *learnerRepoMock) Revoke(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error) {
	if mock.RevokeFunc == nil {
		panic("learnerRepoMock.RevokeFunc: method is nil but learnerRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
		CourseIDs []uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
		CourseIDs: courseIDs,
	}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, learnerID, courseIDs)
}

func (mock *learnerRepoMock) RevokeCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseIDs []uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
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

func (mock *learnerRepoMock) MarkCompleted(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (bool, error) {
	if mock.MarkCompletedFunc == nil {
		panic("learnerRepoMock.MarkCompletedFunc: method is nil but learnerRepo.MarkCompleted was just called")
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
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, learnerID, courseID)
}

func (mock *learnerRepoMock) MarkCompletedCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}
