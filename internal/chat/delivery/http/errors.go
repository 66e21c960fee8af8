package http

import (
	"errors"

	"calendar-assistant/internal/chat"
	pkgErrors "calendar-assistant/pkg/errors"
)

var errMessageRequired = pkgErrors.NewHTTPError(400, "message is required")

// mapError translates chat use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return errMessageRequired
	case errors.Is(err, chat.ErrUnknownIntent):
		return pkgErrors.NewHTTPError(400, "intent must be chat or manage")
	case errors.Is(err, chat.ErrUnsupportedAction):
		return pkgErrors.NewHTTPError(400, "the requested calendar action is not supported")
	case errors.Is(err, chat.ErrInvalidArguments):
		return pkgErrors.NewHTTPError(400, "the event details could not be understood")
	case errors.Is(err, chat.ErrUpstreamModel):
		return pkgErrors.NewHTTPError(502, "the assistant is temporarily unavailable")
	case errors.Is(err, chat.ErrMutationFailed):
		return pkgErrors.NewHTTPError(502, "failed to add the event to your calendar")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
