package event

// Draft is an event as extracted by the model's function call or supplied
// directly by the event form. Title, Date and Time are required; everything
// else is optional. JSON keys match the add_event function schema, so the
// model can only emit fields this package understands.
type Draft struct {
	Title       string `json:"title"`
	Date        string `json:"date"`     // YYYY-MM-DD
	Time        string `json:"time"`     // HH:MM (24-hour) or H:MM AM/PM
	EndTime     string `json:"endTime"`  // optional explicit end, same formats
	Duration    int    `json:"duration"` // minutes; used only when EndTime is absent
	EndDate     string `json:"endDate"`  // optional YYYY-MM-DD for multi-day events
	Location    string `json:"location"`
	Description string `json:"description"`
	TimeZone    string `json:"timeZone"` // IANA name, passed through verbatim
}

// Normalized is a fully resolved event: both instants are wall-clock values
// in a single timezone, ready for the calendar backend.
type Normalized struct {
	Title         string
	StartDateTime string // 2006-01-02T15:04:05
	EndDateTime   string
	TimeZone      string
	Location      string
	Description   string
}
