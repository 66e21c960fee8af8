package chat

import "calendar-assistant/internal/event"

// Intent declares what the caller allows this request to do.
type Intent string

const (
	// IntentChat answers questions only; the model is given no functions.
	IntentChat Intent = "chat"

	// IntentManage additionally allows calendar mutations via add_event.
	IntentManage Intent = "manage"
)

// ProcessInput is the caller-supplied payload for one chat turn.
// CalendarData is the caller-owned context snapshot; nothing here is cached
// between requests.
type ProcessInput struct {
	Message      string
	CalendarData string
	Intent       Intent

	// EventDetails, when set with IntentManage, bypasses the model and
	// goes straight to normalization + mutation (direct form entry).
	EventDetails *event.Draft
}

// ProcessOutput is the externally visible result: a chat answer or a
// mutation confirmation.
type ProcessOutput struct {
	Reply string

	// EventLink is the created event's deep link, set only after a
	// successful mutation.
	EventLink string
}
