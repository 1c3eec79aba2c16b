package entities

import "time"

type SubmissionOutcome string

const (
	SubmissionAccepted SubmissionOutcome = "accepted"
	SubmissionRejected SubmissionOutcome = "rejected"
)

func (o SubmissionOutcome) String() string {
	return string(o)
}

// Submission - локальная запись о попытке назначения ресурсов, отправленной этим сервисом.
type Submission struct {
	ID         int64
	RequestID  string
	OrderID    string
	ActorID    string
	Selections Selections
	Outcome    SubmissionOutcome
	Message    string
	Superseded bool
	CreatedAt  time.Time
}
