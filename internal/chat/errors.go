package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage      = errors.New("message is empty")
	ErrUnknownIntent     = errors.New("intent must be chat or manage")
	ErrUnsupportedAction = errors.New("model invoked an action that is not implemented")
	ErrInvalidArguments  = errors.New("invalid event details provided")
	ErrUpstreamModel     = errors.New("model backend request failed")
	ErrMutationFailed    = errors.New("failed to add the event to the calendar")
)
