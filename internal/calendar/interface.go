package calendar

import (
	"context"

	"calendar-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ListMonth returns the caller's events for one month, or everything
	// upcoming when no month is given.
	ListMonth(ctx context.Context, sc model.Scope, input ListMonthInput) (ListMonthOutput, error)

	// ListYear returns event titles for a whole year, grouped by month name.
	ListYear(ctx context.Context, sc model.Scope, input ListYearInput) (ListYearOutput, error)

	// BuildContext renders a month's events as a plain-text snapshot for
	// the assistant to read.
	BuildContext(ctx context.Context, sc model.Scope, input BuildContextInput) (BuildContextOutput, error)
}
