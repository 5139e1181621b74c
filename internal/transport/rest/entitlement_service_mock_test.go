package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/entitlement"
)

var _ entitlementService = &entitlementServiceMock{}

type entitlementServiceMock struct {
	GetLearnerFunc          func(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error)
	GrantFunc               func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*entitlement.GrantResult, error)
	IsEntitledFunc          func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (bool, error)
	MarkCourseCompletedFunc func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) error
	RevokeFunc              func(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error)

	calls struct {
		GetLearner []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
		Grant []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		IsEntitled []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		MarkCourseCompleted []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		Revoke []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseIDs []uuid.UUID
		}
	}
	lockGetLearner          sync.RWMutex
	lockGrant               sync.RWMutex
	lockIsEntitled          sync.RWMutex
	lockMarkCourseCompleted sync.RWMutex
	lockRevoke              sync.RWMutex
}

func (mock *entitlementServiceMock) GetLearner(ctx context.Context, learnerID uuid.UUID) (*domain.Learner, error) {
	if mock.GetLearnerFunc == nil {
		panic("entitlementServiceMock.GetLearnerFunc: method is nil but entitlementService.GetLearner was just called")
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

func (mock *entitlementServiceMock) GetLearnerCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
} {
	mock.lockGetLearner.RLock()
	calls := mock.calls.GetLearner
	mock.lockGetLearner.RUnlock()
	return calls
}

func (mock *entitlementServiceMock) Grant(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*entitlement.GrantResult, error) {
	if mock.GrantFunc == nil {
		panic("entitlementServiceMock.GrantFunc: method is nil but entitlementService.Grant was just called")
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

func (mock *entitlementServiceMock) GrantCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockGrant.RLock()
	calls := mock.calls.Grant
	mock.lockGrant.RUnlock()
	return calls
}

func (mock *entitlementServiceMock) IsEntitled(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (bool, error) {
	if mock.IsEntitledFunc == nil {
		panic("entitlementServiceMock.IsEntitledFunc: method is nil but entitlementService.IsEntitled was just called")
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
	mock.lockIsEntitled.Lock()
	mock.calls.IsEntitled = append(mock.calls.IsEntitled, callInfo)
	mock.lockIsEntitled.Unlock()
	return mock.IsEntitledFunc(ctx, learnerID, courseID)
}

func (mock *entitlementServiceMock) IsEntitledCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockIsEntitled.RLock()
	calls := mock.calls.IsEntitled
	mock.lockIsEntitled.RUnlock()
	return calls
}

func (mock *entitlementServiceMock) MarkCourseCompleted(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) error {
	if mock.MarkCourseCompletedFunc == nil {
		panic("entitlementServiceMock.MarkCourseCompletedFunc: method is nil but entitlementService.MarkCourseCompleted was just called")
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
	mock.lockMarkCourseCompleted.Lock()
	mock.calls.MarkCourseCompleted = append(mock.calls.MarkCourseCompleted, callInfo)
	mock.lockMarkCourseCompleted.Unlock()
	return mock.MarkCourseCompletedFunc(ctx, learnerID, courseID)
}

func (mock *entitlementServiceMock) MarkCourseCompletedCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockMarkCourseCompleted.RLock()
	calls := mock.calls.MarkCourseCompleted
	mock.lockMarkCourseCompleted.RUnlock()
	return calls
}

func (mock *entitlementServiceMock) Revoke(ctx context.Context, learnerID uuid.UUID, courseIDs []uuid.UUID) (int64, error) {
	if mock.RevokeFunc == nil {
		panic("entitlementServiceMock.RevokeFunc: method is nil but entitlementService.Revoke was just called")
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

func (mock *entitlementServiceMock) RevokeCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseIDs []uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}
