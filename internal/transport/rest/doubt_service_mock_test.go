package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/doubt"
)

var _ doubtService = &doubtServiceMock{}

type doubtServiceMock struct {
	GetFunc            func(ctx context.Context, doubtID uuid.UUID) (*domain.Doubt, error)
	ListAllFunc        func(ctx context.Context, input doubt.ListInput) ([]domain.Doubt, error)
	ListForLearnerFunc func(ctx context.Context, learnerID uuid.UUID) ([]domain.Doubt, error)
	ResolveFunc        func(ctx context.Context, input doubt.ResolveInput) (*domain.Doubt, error)
	SubmitFunc         func(ctx context.Context, input doubt.SubmitInput) (*domain.Doubt, error)

	calls struct {
		Get []struct {
			Ctx     context.Context
			DoubtID uuid.UUID
		}
		ListAll []struct {
			Ctx   context.Context
			Input doubt.ListInput
		}
		ListForLearner []struct {
			Ctx       context.Context
			LearnerID uuid.UUID
		}
		Resolve []struct {
			Ctx   context.Context
			Input doubt.ResolveInput
		}
		Submit []struct {
			Ctx   context.Context
			Input doubt.SubmitInput
		}
	}
	lockGet            sync.RWMutex
	lockListAll        sync.RWMutex
	lockListForLearner sync.RWMutex
	lockResolve        sync.RWMutex
	lockSubmit         sync.RWMutex
}

func (mock *doubtServiceMock) Get(ctx context.Context, doubtID uuid.UUID) (*domain.Doubt, error) {
	if mock.GetFunc == nil {
		panic("doubtServiceMock.GetFunc: method is nil but doubtService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		DoubtID uuid.UUID
	}{
		Ctx:     ctx,
		DoubtID: doubtID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, doubtID)
}

func (mock *doubtServiceMock) GetCalls() []struct {
	Ctx     context.Context
	DoubtID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *doubtServiceMock) ListAll(ctx context.Context, input doubt.ListInput) ([]domain.Doubt, error) {
	if mock.ListAllFunc == nil {
		panic("doubtServiceMock.ListAllFunc: method is nil but doubtService.ListAll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input doubt.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, input)
}

func (mock *doubtServiceMock) ListAllCalls() []struct {
	Ctx   context.Context
	Input doubt.ListInput
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *doubtServiceMock) ListForLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.Doubt, error) {
	if mock.ListForLearnerFunc == nil {
		panic("doubtServiceMock.ListForLearnerFunc: method is nil but doubtService.ListForLearner was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		LearnerID uuid.UUID
	}{
		Ctx:       ctx,
		LearnerID: learnerID,
	}
	mock.lockListForLearner.Lock()
	mock.calls.ListForLearner = append(mock.calls.ListForLearner, callInfo)
	mock.lockListForLearner.Unlock()
	return mock.ListForLearnerFunc(ctx, learnerID)
}

func (mock *doubtServiceMock) ListForLearnerCalls() []struct {
	Ctx       context.Context
	LearnerID uuid.UUID
} {
	mock.lockListForLearner.RLock()
	calls := mock.calls.ListForLearner
	mock.lockListForLearner.RUnlock()
	return calls
}

func (mock *doubtServiceMock) Resolve(ctx context.Context, input doubt.ResolveInput) (*domain.Doubt, error) {
	if mock.ResolveFunc == nil {
		panic("doubtServiceMock.ResolveFunc: method is nil but doubtService.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input doubt.ResolveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, input)
}

func (mock *doubtServiceMock) ResolveCalls() []struct {
	Ctx   context.Context
	Input doubt.ResolveInput
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *doubtServiceMock) Submit(ctx context.Context, input doubt.SubmitInput) (*domain.Doubt, error) {
	if mock.SubmitFunc == nil {
		panic("doubtServiceMock.SubmitFunc: method is nil but doubtService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input doubt.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *doubtServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input doubt.SubmitInput
} {
	mock.lockSubmit.RLock()
	calls := mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}
