package http

import (
	"errors"

	"calendar-assistant/internal/calendar"
	pkgErrors "calendar-assistant/pkg/errors"
)

// mapError translates calendar use-case errors into HTTP errors from
// pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrBadMonth):
		return pkgErrors.NewHTTPError(400, "month must be in YYYY-MM form")
	case errors.Is(err, calendar.ErrMissingYear):
		return pkgErrors.NewHTTPError(400, "year parameter is required")
	case errors.Is(err, calendar.ErrBadYear):
		return pkgErrors.NewHTTPError(400, "year must be in YYYY form")
	case errors.Is(err, calendar.ErrProviderRead):
		return pkgErrors.NewHTTPError(502, "failed to fetch calendar events")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
