package http

import (
	"calendar-assistant/internal/calendar"
)

// --- Request DTOs ---

type listMonthReq struct {
	Month string `form:"month"`
}

func (r listMonthReq) toInput() calendar.ListMonthInput {
	return calendar.ListMonthInput{Month: r.Month}
}

type listYearReq struct {
	Year string `form:"year"`
}

func (r listYearReq) toInput() calendar.ListYearInput {
	return calendar.ListYearInput{Year: r.Year}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	HtmlLink    string `json:"htmlLink,omitempty"`
	AllDay      bool   `json:"allDay"`
}

type listMonthResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListMonthResp(out calendar.ListMonthOutput) listMonthResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = eventResp{
			ID:          ev.ID,
			Title:       ev.Title,
			Start:       ev.Start,
			End:         ev.End,
			Location:    ev.Location,
			Description: ev.Description,
			HtmlLink:    ev.HtmlLink,
			AllDay:      ev.AllDay,
		}
	}
	return listMonthResp{Events: events}
}

type listYearResp struct {
	Months map[string][]string `json:"months"`
}

func (h *handler) newListYearResp(out calendar.ListYearOutput) listYearResp {
	return listYearResp{Months: out.Months}
}

type contextResp struct {
	Context string `json:"context"`
}

func (h *handler) newContextResp(out calendar.BuildContextOutput) contextResp {
	return contextResp{Context: out.Context}
}
