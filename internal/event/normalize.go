package event

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for event dates.
	DateLayout = "2006-01-02"

	// DateTimeLayout is the wall-clock instant format sent to the backend.
	DateTimeLayout = "2006-01-02T15:04:05"

	// DefaultDurationMinutes applies when neither an end time nor a
	// duration is supplied.
	DefaultDurationMinutes = 60
)

var (
	ErrMissingTitle = errors.New("event title is required")
	ErrMissingDate  = errors.New("event date is required")
	ErrMissingTime  = errors.New("event start time is required")
	ErrBadDate      = errors.New("event date must be in YYYY-MM-DD format")
	ErrBadClock     = errors.New("time must be HH:MM (24-hour) or H:MM AM/PM")
)

// Normalize resolves a draft into a fully specified event: start and end
// instants in one timezone, duration defaulted, multi-day spans honored.
// Deterministic, no I/O. Malformed dates and times fail closed rather than
// silently defaulting.
func Normalize(draft Draft, defaultTimeZone string) (Normalized, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return Normalized{}, ErrMissingTitle
	}
	if draft.Date == "" {
		return Normalized{}, ErrMissingDate
	}
	if draft.Time == "" {
		return Normalized{}, ErrMissingTime
	}

	startDay, err := time.Parse(DateLayout, draft.Date)
	if err != nil {
		return Normalized{}, fmt.Errorf("%w: %q", ErrBadDate, draft.Date)
	}

	startHour, startMin, err := parseClock(draft.Time)
	if err != nil {
		return Normalized{}, err
	}

	// Arithmetic in UTC: the zone only matters to the backend, which
	// receives wall-clock values plus the zone name.
	start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), startHour, startMin, 0, 0, time.UTC)

	end, err := resolveEnd(draft, start)
	if err != nil {
		return Normalized{}, err
	}

	timeZone := draft.TimeZone
	if timeZone == "" {
		timeZone = defaultTimeZone
	}

	return Normalized{
		Title:         draft.Title,
		StartDateTime: start.Format(DateTimeLayout),
		EndDateTime:   end.Format(DateTimeLayout),
		TimeZone:      timeZone,
		Location:      draft.Location,
		Description:   draft.Description,
	}, nil
}

// resolveEnd picks the end instant: an explicit end time wins (on the end
// date when given, else the start date); otherwise start + duration.
func resolveEnd(draft Draft, start time.Time) (time.Time, error) {
	if draft.EndTime != "" {
		endDate := draft.Date
		if draft.EndDate != "" {
			endDate = draft.EndDate
		}

		endDay, err := time.Parse(DateLayout, endDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, endDate)
		}

		endHour, endMin, err := parseClock(draft.EndTime)
		if err != nil {
			return time.Time{}, err
		}

		return time.Date(endDay.Year(), endDay.Month(), endDay.Day(), endHour, endMin, 0, 0, time.UTC), nil
	}

	duration := draft.Duration
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}
	return start.Add(time.Duration(duration) * time.Minute), nil
}

// parseClock parses "HH:MM" (24-hour) or "H:MM AM/PM" (space optional,
// case-insensitive). For 12-hour input 12 AM maps to 00, 12 PM stays 12,
// and any other PM hour gains 12.
func parseClock(s string) (hour, minute int, err error) {
	clock := strings.ToUpper(strings.TrimSpace(s))

	twelveHour := false
	isPM := false
	switch {
	case strings.HasSuffix(clock, "AM"):
		twelveHour = true
		clock = strings.TrimSpace(strings.TrimSuffix(clock, "AM"))
	case strings.HasSuffix(clock, "PM"):
		twelveHour = true
		isPM = true
		clock = strings.TrimSpace(strings.TrimSuffix(clock, "PM"))
	}

	hourStr, minStr, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	hour, err = strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	minute, err = strconv.Atoi(minStr)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	if twelveHour {
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
		}
		if hour == 12 {
			hour = 0
		}
		if isPM {
			hour += 12
		}
		return hour, minute, nil
	}

	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return hour, minute, nil
}
