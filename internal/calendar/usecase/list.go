package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
)

const monthLayout = "2006-01"

// ListMonth returns the caller's events for one month. Without a month it
// lists everything from the current moment onward, mirroring the default
// calendar view.
func (uc *implUseCase) ListMonth(ctx context.Context, sc model.Scope, input calendar.ListMonthInput) (calendar.ListMonthOutput, error) {
	var timeMin, timeMax time.Time
	if input.Month != "" {
		first, err := time.Parse(monthLayout, input.Month)
		if err != nil {
			return calendar.ListMonthOutput{}, fmt.Errorf("%w: %q", calendar.ErrBadMonth, input.Month)
		}
		timeMin = first
		timeMax = first.AddDate(0, 1, 0)
	} else {
		timeMin = time.Now().UTC()
	}

	items, err := uc.fetch(ctx, sc, timeMin, timeMax)
	if err != nil {
		return calendar.ListMonthOutput{}, err
	}

	events := make([]calendar.Event, len(items))
	for i, item := range items {
		events[i] = fromProvider(item)
	}
	return calendar.ListMonthOutput{Events: events}, nil
}

// ListYear returns event titles for a whole year, grouped by English month
// name.
func (uc *implUseCase) ListYear(ctx context.Context, sc model.Scope, input calendar.ListYearInput) (calendar.ListYearOutput, error) {
	if input.Year == "" {
		return calendar.ListYearOutput{}, calendar.ErrMissingYear
	}
	jan, err := time.Parse("2006", input.Year)
	if err != nil {
		return calendar.ListYearOutput{}, fmt.Errorf("%w: %q", calendar.ErrBadYear, input.Year)
	}

	items, err := uc.fetch(ctx, sc, jan, jan.AddDate(1, 0, 0))
	if err != nil {
		return calendar.ListYearOutput{}, err
	}

	months := make(map[string][]string)
	for _, item := range items {
		start, ok := parseStart(item)
		if !ok {
			continue
		}
		name := start.Month().String()
		months[name] = append(months[name], item.Summary)
	}
	return calendar.ListYearOutput{Months: months}, nil
}

func (uc *implUseCase) fetch(ctx context.Context, sc model.Scope, timeMin, timeMax time.Time) ([]gcalendar.Event, error) {
	reader, err := uc.newReader(ctx, sc.GoogleAccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "fetch: calendar client construction failed: %v", err)
		return nil, calendar.ErrProviderRead
	}

	items, err := reader.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: "primary",
		TimeMin:    timeMin,
		TimeMax:    timeMax,
	})
	if err != nil {
		uc.l.Errorf(ctx, "fetch: list events failed for user=%s: %v", sc.UserID, err)
		return nil, calendar.ErrProviderRead
	}
	return items, nil
}

func fromProvider(item gcalendar.Event) calendar.Event {
	return calendar.Event{
		ID:          item.ID,
		Title:       item.Summary,
		Start:       item.Start,
		End:         item.End,
		Location:    item.Location,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		AllDay:      item.AllDay,
	}
}

func parseStart(item gcalendar.Event) (time.Time, bool) {
	if item.AllDay {
		t, err := time.Parse("2006-01-02", item.Start)
		return t, err == nil
	}
	t, err := time.Parse(time.RFC3339, item.Start)
	return t, err == nil
}
