package calendar

// Event is the externally visible calendar entry.
type Event struct {
	ID          string
	Title       string
	Start       string // RFC3339 dateTime, or YYYY-MM-DD for all-day events
	End         string
	Location    string
	Description string
	HtmlLink    string
	AllDay      bool
}

type ListMonthInput struct {
	// Month in "YYYY-MM" form. Empty lists everything from now onward.
	Month string
}

type ListMonthOutput struct {
	Events []Event
}

type ListYearInput struct {
	// Year in "YYYY" form. Required.
	Year string
}

// ListYearOutput groups event titles under English month names
// ("January" .. "December"). Months without events are absent.
type ListYearOutput struct {
	Months map[string][]string
}

type BuildContextInput struct {
	Month string
}

type BuildContextOutput struct {
	// Context is a plain-text rendering of the month's events, ready to
	// hand to the assistant as conversation grounding.
	Context string
}
