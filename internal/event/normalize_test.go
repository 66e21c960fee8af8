package event_test

import (
	"errors"
	"strings"
	"testing"

	"calendar-assistant/internal/event"
)

const defaultZone = "America/Los_Angeles"

func TestNormalize_TwelveHourClock(t *testing.T) {
	cases := []struct {
		in        string
		wantStart string
	}{
		{"12:00 AM", "2025-03-10T00:00:00"},
		{"12:30 AM", "2025-03-10T00:30:00"},
		{"12:00 PM", "2025-03-10T12:00:00"},
		{"12:45 PM", "2025-03-10T12:45:00"},
		{"1:00 PM", "2025-03-10T13:00:00"},
		{"2:30 PM", "2025-03-10T14:30:00"},
		{"11:59 PM", "2025-03-10T23:59:00"},
		{"9:00 AM", "2025-03-10T09:00:00"},
		{"9:00am", "2025-03-10T09:00:00"},
		{"9:00", "2025-03-10T09:00:00"},
		{"14:30", "2025-03-10T14:30:00"},
		{"00:15", "2025-03-10T00:15:00"},
	}

	for _, tc := range cases {
		got, err := event.Normalize(event.Draft{
			Title: "Meeting",
			Date:  "2025-03-10",
			Time:  tc.in,
		}, defaultZone)
		if err != nil {
			t.Errorf("Normalize(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got.StartDateTime != tc.wantStart {
			t.Errorf("Normalize(%q): start = %s, want %s", tc.in, got.StartDateTime, tc.wantStart)
		}
	}
}

func TestNormalize_MalformedTimeFailsClosed(t *testing.T) {
	cases := []string{"", "noon", "9 AM", "25:00", "9:60", "9:xx PM", "13:00 PM", "0:30 AM"}

	for _, tc := range cases {
		_, err := event.Normalize(event.Draft{
			Title: "Meeting",
			Date:  "2025-03-10",
			Time:  tc,
		}, defaultZone)
		if err == nil {
			t.Errorf("Normalize(time=%q): expected error, got none", tc)
		}
	}
}

func TestNormalize_RequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		draft event.Draft
		want  error
	}{
		{"missing title", event.Draft{Date: "2025-03-10", Time: "9:00"}, event.ErrMissingTitle},
		{"blank title", event.Draft{Title: "   ", Date: "2025-03-10", Time: "9:00"}, event.ErrMissingTitle},
		{"missing date", event.Draft{Title: "X", Time: "9:00"}, event.ErrMissingDate},
		{"missing time", event.Draft{Title: "X", Date: "2025-03-10"}, event.ErrMissingTime},
		{"bad date", event.Draft{Title: "X", Date: "03/10/2025", Time: "9:00"}, event.ErrBadDate},
		{"bad clock", event.Draft{Title: "X", Date: "2025-03-10", Time: "nine"}, event.ErrBadClock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := event.Normalize(tc.draft, defaultZone)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNormalize_DefaultDuration(t *testing.T) {
	// Scenario: no duration, no end time → end = start + 60 minutes.
	got, err := event.Normalize(event.Draft{
		Title: "Standup",
		Date:  "2025-03-10",
		Time:  "9:00 AM",
	}, defaultZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StartDateTime != "2025-03-10T09:00:00" {
		t.Errorf("start = %s", got.StartDateTime)
	}
	if got.EndDateTime != "2025-03-10T10:00:00" {
		t.Errorf("end = %s, want start + 60m", got.EndDateTime)
	}
}

func TestNormalize_ExplicitDuration(t *testing.T) {
	got, err := event.Normalize(event.Draft{
		Title:    "Retro",
		Date:     "2025-03-10",
		Time:     "2:30 PM",
		Duration: 90,
	}, defaultZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StartDateTime != "2025-03-10T14:30:00" {
		t.Errorf("start = %s", got.StartDateTime)
	}
	if got.EndDateTime != "2025-03-10T16:00:00" {
		t.Errorf("end = %s, want 16:00 same day", got.EndDateTime)
	}
}

func TestNormalize_DurationCrossesMidnight(t *testing.T) {
	got, err := event.Normalize(event.Draft{
		Title:    "Late call",
		Date:     "2025-03-10",
		Time:     "23:30",
		Duration: 60,
	}, defaultZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EndDateTime != "2025-03-11T00:30:00" {
		t.Errorf("end = %s, want rollover to next day", got.EndDateTime)
	}
}

func TestNormalize_MultiDay(t *testing.T) {
	got, err := event.Normalize(event.Draft{
		Title:   "Offsite",
		Date:    "2025-03-10",
		EndDate: "2025-03-12",
		Time:    "09:00",
		EndTime: "17:00",
	}, defaultZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StartDateTime != "2025-03-10T09:00:00" {
		t.Errorf("start = %s", got.StartDateTime)
	}
	if got.EndDateTime != "2025-03-12T17:00:00" {
		t.Errorf("end = %s, want end date honored", got.EndDateTime)
	}
}

func TestNormalize_ExplicitEndBeatsDuration(t *testing.T) {
	got, err := event.Normalize(event.Draft{
		Title:    "Workshop",
		Date:     "2025-03-10",
		Time:     "09:00",
		EndTime:  "11:30",
		Duration: 15,
	}, defaultZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EndDateTime != "2025-03-10T11:30:00" {
		t.Errorf("end = %s, explicit end time should win over duration", got.EndDateTime)
	}
}

func TestNormalize_TimeZone(t *testing.T) {
	t.Run("Default applied when absent", func(t *testing.T) {
		got, _ := event.Normalize(event.Draft{Title: "X", Date: "2025-03-10", Time: "9:00"}, defaultZone)
		if got.TimeZone != defaultZone {
			t.Errorf("zone = %s, want default", got.TimeZone)
		}
	})

	t.Run("Caller zone passed verbatim", func(t *testing.T) {
		// No zone-database validation at this layer.
		got, err := event.Normalize(event.Draft{
			Title: "X", Date: "2025-03-10", Time: "9:00", TimeZone: "Europe/Berlin",
		}, defaultZone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TimeZone != "Europe/Berlin" {
			t.Errorf("zone = %s, want caller value", got.TimeZone)
		}
	})
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := event.Normalize(event.Draft{
		Title:    "Planning",
		Date:     "2025-03-10",
		Time:     "2:30 PM",
		Duration: 90,
		Location: "HQ",
	}, defaultZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-express the normalized output as a draft and normalize again.
	startDate, startClock, _ := strings.Cut(first.StartDateTime, "T")
	endDate, endClock, _ := strings.Cut(first.EndDateTime, "T")

	second, err := event.Normalize(event.Draft{
		Title:    first.Title,
		Date:     startDate,
		Time:     startClock[:5],
		EndDate:  endDate,
		EndTime:  endClock[:5],
		Location: first.Location,
		TimeZone: first.TimeZone,
	}, defaultZone)
	if err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}

	if second.StartDateTime != first.StartDateTime || second.EndDateTime != first.EndDateTime {
		t.Errorf("re-normalization changed instants: %s–%s vs %s–%s",
			second.StartDateTime, second.EndDateTime, first.StartDateTime, first.EndDateTime)
	}
	if second.TimeZone != first.TimeZone {
		t.Errorf("re-normalization changed zone: %s vs %s", second.TimeZone, first.TimeZone)
	}
}

func TestNormalize_OptionalFieldsDefaultEmpty(t *testing.T) {
	got, _ := event.Normalize(event.Draft{Title: "X", Date: "2025-03-10", Time: "9:00"}, defaultZone)
	if got.Location != "" || got.Description != "" {
		t.Errorf("expected empty location/description, got %q/%q", got.Location, got.Description)
	}
}
