package model

// Event is an event record in the modern schema.
type Event struct {
	EventName        string `json:"event_name"`
	EventDate        string `json:"event_date"`
	Venue            string `json:"venue"`
	TotalCapacity    int64  `json:"total_capacity"`
	TicketsSold      int64  `json:"tickets_sold"`
	AvailableTickets int64  `json:"available_tickets"`
	EventDescription string `json:"event_description"`
}

type TranslateRequest struct {
	Data struct {
		LegacyEvent *LegacyEvent `json:"legacy_event"`
	} `json:"data"`
}

type EventResponse struct {
	Data *Event `json:"data"`
}
