package chat

import (
	"context"

	"calendar-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain: one
// request in, one reply or error out. No state survives a call.
type UseCase interface {
	// Process answers a calendar question or performs an event creation,
	// depending on what the model (or the direct event form) asks for.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
