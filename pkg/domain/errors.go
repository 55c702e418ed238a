package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoComments is returned when an analysis is requested for a
	// video with zero comments. The pipeline fails fast instead of
	// emitting an all-zero report that looks like a valid one.
	ErrNoComments = errors.New("no comments to analyze")

	// ErrRateLimitExceeded signals quota exhaustion on the contextual
	// classifier. It is propagated immediately and never retried so a
	// caller can surface a specific message.
	ErrRateLimitExceeded = errors.New("classifier rate limit exceeded")

	// ErrClassifierUnavailable signals that the configured model is
	// missing or retired; the model identifier needs reconfiguring.
	ErrClassifierUnavailable = errors.New("classifier model unavailable")
)

// MalformedResponseError reports a classifier response that does not
// match the expected JSON schema. It is a hard failure for the batch it
// occurred in and aborts the whole multi-batch operation.
type MalformedResponseError struct {
	Batch int
	Err   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed classifier response in batch %d: %v", e.Batch, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func IsMalformedResponseError(err error) bool {
	var malformed *MalformedResponseError
	return errors.As(err, &malformed)
}

// NotFoundError reports a missing stored entity.
type NotFoundError struct {
	EntityType string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID)
}

func NewNotFoundError(entityType, id string) error {
	return &NotFoundError{EntityType: entityType, ID: id}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
