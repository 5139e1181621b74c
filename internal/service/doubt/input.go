package doubt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// SubmitInput holds parameters for submitting a doubt.
type SubmitInput struct {
	LearnerID  uuid.UUID
	CourseID   uuid.UUID
	TopicID    uuid.UUID
	TopicTitle string
	Query      string
}

func (i SubmitInput) validateIDs() error {
	var errs []domain.FieldError

	if i.LearnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "learner_id", Message: "required"})
	}
	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateContent checks the text fields. The topic title is an optional
// display snapshot; only its length is bounded.
func (i SubmitInput) validateContent(maxQuery int) error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(strings.TrimSpace(i.TopicTitle)) > MaxTopicTitleLength {
		errs = append(errs, domain.FieldError{Field: "topic_title", Message: fmt.Sprintf("max %d characters", MaxTopicTitleLength)})
	}

	query := strings.TrimSpace(i.Query)
	if query == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	} else if utf8.RuneCountInString(query) > maxQuery {
		errs = append(errs, domain.FieldError{Field: "query", Message: fmt.Sprintf("max %d characters", maxQuery)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveInput holds parameters for answering a doubt.
type ResolveInput struct {
	MentorID uuid.UUID
	DoubtID  uuid.UUID
	Response string
}

func (i ResolveInput) validateIDs() error {
	var errs []domain.FieldError
	if i.MentorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "mentor_id", Message: "required"})
	}
	if i.DoubtID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "doubt_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ResolveInput) validateResponse() error {
	response := strings.TrimSpace(i.Response)
	if response == "" {
		return domain.NewValidationError("response", "required")
	}
	if utf8.RuneCountInString(response) > MaxResponseLength {
		return domain.NewValidationError("response", fmt.Sprintf("max %d characters", MaxResponseLength))
	}
	return nil
}

// ListInput narrows the mentor-side listing. Zero values mean "all statuses"
// and the configured default page size.
type ListInput struct {
	Status *domain.DoubtStatus
	Limit  int
	Offset int
}

func (i ListInput) validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending or resolved"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
