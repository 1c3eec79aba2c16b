package submission

import "dashboard/internal/entities"

func ToDomain(s *SubmissionDB) *entities.Submission {
	if s == nil {
		return nil
	}
	return &entities.Submission{
		ID:        s.ID,
		RequestID: s.RequestID,
		OrderID:   s.OrderID,
		ActorID:   s.ActorID,
		Selections: entities.Selections{
			VehicleID: s.VehicleID,
			DriverID:  s.DriverID,
			TrailerID: s.TrailerID,
		},
		Outcome:    entities.SubmissionOutcome(s.Outcome),
		Message:    s.Message,
		Superseded: s.Superseded,
		CreatedAt:  s.CreatedAt,
	}
}

func FromDomain(s *entities.Submission) *SubmissionDB {
	if s == nil {
		return nil
	}
	sel := s.Selections.Normalized()
	return &SubmissionDB{
		ID:         s.ID,
		RequestID:  s.RequestID,
		OrderID:    s.OrderID,
		ActorID:    s.ActorID,
		VehicleID:  sel.VehicleID,
		DriverID:   sel.DriverID,
		TrailerID:  sel.TrailerID,
		Outcome:    s.Outcome.String(),
		Message:    s.Message,
		Superseded: s.Superseded,
		CreatedAt:  s.CreatedAt,
	}
}
