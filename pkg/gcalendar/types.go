package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
// StartDateTime/EndDateTime are wall-clock values ("2006-01-02T15:04:05")
// interpreted by the backend in Timezone; the zone name is passed through
// verbatim and an unknown name is the backend's rejection to raise.
type CreateEventRequest struct {
	CalendarID    string
	Summary       string
	Location      string
	Description   string
	StartDateTime string
	EndDateTime   string
	Timezone      string // IANA name, e.g. "America/Los_Angeles"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Location    string
	Description string
	HtmlLink    string
	Start       string // RFC3339 dateTime, or YYYY-MM-DD for all-day events
	End         string
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time // zero value means no upper bound
	MaxResults int64
}
