package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrBadMonth     = errors.New("month must be in YYYY-MM form")
	ErrMissingYear  = errors.New("year parameter is required")
	ErrBadYear      = errors.New("year must be in YYYY form")
	ErrProviderRead = errors.New("failed to fetch calendar events")
)
