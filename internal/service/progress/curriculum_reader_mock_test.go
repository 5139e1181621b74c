package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ curriculumReader = &curriculumReaderMock{}

type curriculumReaderMock struct {
	TopicExistsFunc func(ctx context.Context, courseID uuid.UUID, topicID uuid.UUID) (bool, error)

	calls struct {
		TopicExists []struct {
			Ctx      context.Context
			CourseID uuid.UUID
			TopicID  uuid.UUID
		}
	}
	lockTopicExists sync.RWMutex
}

func (mock *curriculumReaderMock) TopicExists(ctx context.Context, courseID uuid.UUID, topicID uuid.UUID) (bool, error) {
	if mock.TopicExistsFunc == nil {
		panic("curriculumReaderMock.TopicExistsFunc: method is nil but curriculumReader.TopicExists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID uuid.UUID
		TopicID  uuid.UUID
	}{
		Ctx:      ctx,
		CourseID: courseID,
		TopicID:  topicID,
	}
	mock.lockTopicExists.Lock()
	mock.calls.TopicExists = append(mock.calls.TopicExists, callInfo)
	mock.lockTopicExists.Unlock()
	return mock.TopicExistsFunc(ctx, courseID, topicID)
}

func (mock *curriculumReaderMock) TopicExistsCalls() []struct {
	Ctx      context.Context
	CourseID uuid.UUID
	TopicID  uuid.UUID
} {
	mock.lockTopicExists.RLock()
	calls := mock.calls.TopicExists
	mock.lockTopicExists.RUnlock()
	return calls
}
