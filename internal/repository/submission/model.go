package submission

import "time"

type SubmissionDB struct {
	ID         int64
	RequestID  string
	OrderID    string
	ActorID    string
	VehicleID  *string
	DriverID   *string
	TrailerID  *string
	Outcome    string
	Message    string
	Superseded bool
	CreatedAt  time.Time
}
