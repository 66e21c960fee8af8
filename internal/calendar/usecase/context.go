package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
)

// BuildContext renders a month's events as plain text for the assistant.
// Every line is one event so the model can quote dates and titles back
// without parsing anything.
func (uc *implUseCase) BuildContext(ctx context.Context, sc model.Scope, input calendar.BuildContextInput) (calendar.BuildContextOutput, error) {
	out, err := uc.ListMonth(ctx, sc, calendar.ListMonthInput{Month: input.Month})
	if err != nil {
		return calendar.BuildContextOutput{}, err
	}

	if len(out.Events) == 0 {
		return calendar.BuildContextOutput{Context: "No events scheduled."}, nil
	}

	var b strings.Builder
	for _, ev := range out.Events {
		if ev.AllDay {
			fmt.Fprintf(&b, "- %s (all day %s", ev.Title, ev.Start)
		} else {
			fmt.Fprintf(&b, "- %s (%s to %s", ev.Title, ev.Start, ev.End)
		}
		if ev.Location != "" {
			fmt.Fprintf(&b, ", at %s", ev.Location)
		}
		b.WriteString(")\n")
	}
	return calendar.BuildContextOutput{Context: strings.TrimRight(b.String(), "\n")}, nil
}
