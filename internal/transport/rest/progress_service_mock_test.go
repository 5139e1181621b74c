package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/progress"
)

var _ progressService = &progressServiceMock{}

type progressServiceMock struct {
	GetCourseProgressFunc   func(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.ProgressRecord, error)
	GetProgressFunc         func(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error)
	MarkTopicCompleteFunc   func(ctx context.Context, input progress.MarkTopicCompleteInput) (*domain.ProgressRecord, error)
	UnmarkTopicCompleteFunc func(ctx context.Context, input progress.UnmarkTopicCompleteInput) (*domain.ProgressRecord, error)

	calls struct {
		GetCourseProgress []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
			CourseID  uuid.UUID
		}
		GetProgress []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
		MarkTopicComplete []struct {
			Ctx   context.Context
			Input progress.MarkTopicCompleteInput
		}
		UnmarkTopicComplete []struct {
			Ctx   context.Context
			Input progress.UnmarkTopicCompleteInput
		}
	}
	lockGetCourseProgress   sync.RWMutex
	lockGetProgress         sync.RWMutex
	lockMarkTopicComplete   sync.RWMutex
	lockUnmarkTopicComplete sync.RWMutex
}

func (mock *progressServiceMock) GetCourseProgress(ctx context.Context, learnerID uuid.UUID, courseID uuid.UUID) (*domain.ProgressRecord, error) {
	if mock.GetCourseProgressFunc == nil {
		panic("progressServiceMock.GetCourseProgressFunc: method is nil but progressService.GetCourseProgress was just called")
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
	mock.lockGetCourseProgress.Lock()
	mock.calls.GetCourseProgress = append(mock.calls.GetCourseProgress, callInfo)
	mock.lockGetCourseProgress.Unlock()
	return mock.GetCourseProgressFunc(ctx, learnerID, courseID)
}

func (mock *progressServiceMock) GetCourseProgressCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
	CourseID  uuid.UUID
} {
	mock.lockGetCourseProgress.RLock()
	calls := mock.calls.GetCourseProgress
	mock.lockGetCourseProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) GetProgress(ctx context.Context, learnerID uuid.UUID) ([]domain.ProgressRecord, error) {
	if mock.GetProgressFunc == nil {
		panic("progressServiceMock.GetProgressFunc: method is nil but progressService.GetProgress was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
	}
	mock.lockGetProgress.Lock()
	mock.calls.GetProgress = append(mock.calls.GetProgress, callInfo)
	mock.lockGetProgress.Unlock()
	return mock.GetProgressFunc(ctx, learnerID)
}

func (mock *progressServiceMock) GetProgressCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
} {
	mock.lockGetProgress.RLock()
	calls := mock.calls.GetProgress
	mock.lockGetProgress.RUnlock()
	return calls
}

func (mock *progressServiceMock) MarkTopicComplete(ctx context.Context, input progress.MarkTopicCompleteInput) (*domain.ProgressRecord, error) {
	if mock.MarkTopicCompleteFunc == nil {
		panic("progressServiceMock.MarkTopicCompleteFunc: method is nil but progressService.MarkTopicComplete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.MarkTopicCompleteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockMarkTopicComplete.Lock()
	mock.calls.MarkTopicComplete = append(mock.calls.MarkTopicComplete, callInfo)
	mock.lockMarkTopicComplete.Unlock()
	return mock.MarkTopicCompleteFunc(ctx, input)
}

func (mock *progressServiceMock) MarkTopicCompleteCalls() []struct {
	Ctx   context.Context
	Input progress.MarkTopicCompleteInput
} {
	mock.lockMarkTopicComplete.RLock()
	calls := mock.calls.MarkTopicComplete
	mock.lockMarkTopicComplete.RUnlock()
	return calls
}

func (mock *progressServiceMock) UnmarkTopicComplete(ctx context.Context, input progress.UnmarkTopicCompleteInput) (*domain.ProgressRecord, error) {
	if mock.UnmarkTopicCompleteFunc == nil {
		panic("progressServiceMock.UnmarkTopicCompleteFunc: method is nil but progressService.UnmarkTopicComplete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input progress.UnmarkTopicCompleteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUnmarkTopicComplete.Lock()
	mock.calls.UnmarkTopicComplete = append(mock.calls.UnmarkTopicComplete, callInfo)
	mock.lockUnmarkTopicComplete.Unlock()
	return mock.UnmarkTopicCompleteFunc(ctx, input)
}

func (mock *progressServiceMock) UnmarkTopicCompleteCalls() []struct {
	Ctx   context.Context
	Input progress.UnmarkTopicCompleteInput
} {
	mock.lockUnmarkTopicComplete.RLock()
	calls := mock.calls.UnmarkTopicComplete
	mock.lockUnmarkTopicComplete.RUnlock()
	return calls
}
