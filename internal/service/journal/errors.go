package journal

import "errors"

var (
	ErrInvalidSubmission = errors.New("invalid submission")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrDuplicateRequest  = errors.New("submission with this request id already recorded")
)
