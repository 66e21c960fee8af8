package http

import (
	"calendar-assistant/internal/chat"
	"calendar-assistant/internal/event"
)

// --- Request DTOs ---

type eventDetailsReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Date        string `json:"date"        binding:"required"`
	Time        string `json:"time"        binding:"required"`
	EndTime     string `json:"endTime"`
	Duration    int    `json:"duration"    binding:"omitempty,min=1"`
	EndDate     string `json:"endDate"`
	Location    string `json:"location"`
	Description string `json:"description"`
	TimeZone    string `json:"timeZone"`
}

func (r eventDetailsReq) toDraft() *event.Draft {
	return &event.Draft{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		EndTime:     r.EndTime,
		Duration:    r.Duration,
		EndDate:     r.EndDate,
		Location:    r.Location,
		Description: r.Description,
		TimeZone:    r.TimeZone,
	}
}

type chatReq struct {
	Message      string           `json:"message"`
	CalendarData string           `json:"calendarData"`
	Intent       string           `json:"intent" binding:"required,oneof=chat manage"`
	EventDetails *eventDetailsReq `json:"eventDetails"`
}

func (r chatReq) validate() error {
	// A direct event submission carries no message; everything else must.
	if r.EventDetails == nil && r.Message == "" {
		return errMessageRequired
	}
	return nil
}

func (r chatReq) toInput() chat.ProcessInput {
	input := chat.ProcessInput{
		Message:      r.Message,
		CalendarData: r.CalendarData,
		Intent:       chat.Intent(r.Intent),
	}
	if r.EventDetails != nil {
		input.EventDetails = r.EventDetails.toDraft()
	}
	return input
}

// --- Response DTOs ---

type chatResp struct {
	Reply     string `json:"reply"`
	EventLink string `json:"eventLink,omitempty"`
}

func (h *handler) newChatResp(out chat.ProcessOutput) chatResp {
	return chatResp{
		Reply:     out.Reply,
		EventLink: out.EventLink,
	}
}
