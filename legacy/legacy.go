package legacy

import (
	"context"
	"eventers-legacy-adapter/model"
)

const (
	stubTitle            = "Concierto de Jazz Clásico"
	stubDate             = "15/05/2024"
	stubLocation         = "Teatro Principal"
	stubTotalCapacity    = 300
	stubAvailableTickets = 75
	stubDetails          = "Un concierto único con los mejores músicos de jazz."
)

// System is the legacy event system the adapter reads from.
type System interface {
	GetEventInfo(ctx context.Context) (*model.LegacyEvent, error)
}

// SystemFunc lets an ordinary function act as a System.
type SystemFunc func(ctx context.Context) (*model.LegacyEvent, error)

func (f SystemFunc) GetEventInfo(ctx context.Context) (*model.LegacyEvent, error) {
	return f(ctx)
}

// NewStub returns a System that always serves the same hardcoded event.
func NewStub() *Stub {
	return &Stub{}
}

// Stub stands in for the legacy system. It never fails.
type Stub struct{}

// GetEventInfo returns a freshly allocated copy of the fixed event on each call.
func (s *Stub) GetEventInfo(_ context.Context) (*model.LegacyEvent, error) {
	title, date, location, details := stubTitle, stubDate, stubLocation, stubDetails
	total, available := model.Count(stubTotalCapacity), model.Count(stubAvailableTickets)

	return &model.LegacyEvent{
		Title:            &title,
		Date:             &date,
		Location:         &location,
		TotalCapacity:    &total,
		AvailableTickets: &available,
		Details:          &details,
	}, nil
}
