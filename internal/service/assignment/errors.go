package assignment

import "errors"

var (
	ErrUnauthenticated = errors.New("acting user is not authenticated")
	ErrNothingToAssign = errors.New("no resources selected")
	ErrInvalidOrderID  = errors.New("invalid order id")
)

const defaultFailureMessage = "assignment request failed"

// SubmissionError - бэкенд отклонил назначение или не ответил. Message предназначен для показа пользователю.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return "submit assignment: " + e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
