package usecase

import (
	"context"

	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/gemini"
	pkgLog "calendar-assistant/pkg/log"
)

// LLM is the model backend: one request, one reply.
type LLM interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

// CalendarService is the mutation surface the executor needs.
type CalendarService interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarFactory builds a calendar service from the caller's access token.
// A fresh service per request keeps credentials out of shared state.
type CalendarFactory func(ctx context.Context, accessToken string) (CalendarService, error)

type implUseCase struct {
	l           pkgLog.Logger
	llm         LLM
	newCalendar CalendarFactory
	timezone    string // fallback IANA zone for drafts that carry none
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, llm LLM, newCalendar CalendarFactory, defaultTimezone string) *implUseCase {
	if defaultTimezone == "" {
		defaultTimezone = "America/Los_Angeles"
	}
	return &implUseCase{
		l:           l,
		llm:         llm,
		newCalendar: newCalendar,
		timezone:    defaultTimezone,
	}
}

// NewGoogleCalendarFactory returns the production CalendarFactory backed by
// the Google Calendar API.
func NewGoogleCalendarFactory() CalendarFactory {
	return func(ctx context.Context, accessToken string) (CalendarService, error) {
		return gcalendar.NewClientFromToken(ctx, accessToken)
	}
}
