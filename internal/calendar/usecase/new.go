package usecase

import (
	"context"

	"calendar-assistant/pkg/gcalendar"
	pkgLog "calendar-assistant/pkg/log"
)

// CalendarReader is the query surface the use case needs.
type CalendarReader interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// ReaderFactory builds a calendar reader from the caller's access token.
type ReaderFactory func(ctx context.Context, accessToken string) (CalendarReader, error)

type implUseCase struct {
	l         pkgLog.Logger
	newReader ReaderFactory
}

// New creates a new calendar UseCase instance.
func New(l pkgLog.Logger, newReader ReaderFactory) *implUseCase {
	return &implUseCase{
		l:         l,
		newReader: newReader,
	}
}

// NewGoogleReaderFactory returns the production ReaderFactory backed by the
// Google Calendar API.
func NewGoogleReaderFactory() ReaderFactory {
	return func(ctx context.Context, accessToken string) (CalendarReader, error) {
		return gcalendar.NewClientFromToken(ctx, accessToken)
	}
}
