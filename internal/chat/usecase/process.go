package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"calendar-assistant/internal/chat"
	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/gcalendar"
)

// Process runs one chat turn: compose the model request, interpret the
// reply, and execute the mutation when the model (or the direct form) asks
// for one.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	if input.Intent != chat.IntentChat && input.Intent != chat.IntentManage {
		return chat.ProcessOutput{}, chat.ErrUnknownIntent
	}

	// Direct entry: a structured draft from the event form skips the model.
	if input.Intent == chat.IntentManage && input.EventDetails != nil {
		uc.l.Infof(ctx, "Process: direct add for user=%s title=%q", sc.UserID, input.EventDetails.Title)
		return uc.executeAddEvent(ctx, sc, *input.EventDetails)
	}

	if strings.TrimSpace(input.Message) == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	uc.l.Infof(ctx, "Process: user=%s intent=%s message_length=%d", sc.UserID, input.Intent, len(input.Message))

	resp, err := uc.llm.GenerateContent(ctx, composeModelRequest(input))
	if err != nil {
		// Provider error bodies stay in the logs.
		uc.l.Errorf(ctx, "Process: model call failed: %v", err)
		return chat.ProcessOutput{}, chat.ErrUpstreamModel
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		uc.l.Errorf(ctx, "Process: empty model response")
		return chat.ProcessOutput{}, chat.ErrUpstreamModel
	}

	part := resp.Candidates[0].Content.Parts[0]

	// Plain text is the final answer; the executor never runs.
	if part.FunctionCall == nil {
		return chat.ProcessOutput{Reply: strings.TrimSpace(part.Text)}, nil
	}

	if part.FunctionCall.Name != ActionAddEvent {
		uc.l.Warnf(ctx, "Process: model invoked unknown function %q", part.FunctionCall.Name)
		return chat.ProcessOutput{}, fmt.Errorf("%w: %s", chat.ErrUnsupportedAction, part.FunctionCall.Name)
	}

	draft, err := decodeDraft(part.FunctionCall.Args)
	if err != nil {
		uc.l.Errorf(ctx, "Process: failed to decode function arguments: %v", err)
		return chat.ProcessOutput{}, fmt.Errorf("%w: %v", chat.ErrInvalidArguments, err)
	}

	return uc.executeAddEvent(ctx, sc, draft)
}

// executeAddEvent normalizes the draft and performs the single calendar
// mutation. The confirmation echoes the draft's values verbatim so it
// matches what the user typed.
func (uc *implUseCase) executeAddEvent(ctx context.Context, sc model.Scope, draft event.Draft) (chat.ProcessOutput, error) {
	normalized, err := event.Normalize(draft, uc.timezone)
	if err != nil {
		return chat.ProcessOutput{}, fmt.Errorf("%w: %v", chat.ErrInvalidArguments, err)
	}

	calendar, err := uc.newCalendar(ctx, sc.GoogleAccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "executeAddEvent: calendar client construction failed: %v", err)
		return chat.ProcessOutput{}, chat.ErrMutationFailed
	}

	created, err := calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:    "primary",
		Summary:       normalized.Title,
		Location:      normalized.Location,
		Description:   normalized.Description,
		StartDateTime: normalized.StartDateTime,
		EndDateTime:   normalized.EndDateTime,
		Timezone:      normalized.TimeZone,
	})
	if err != nil {
		// Raw provider errors are logged, never echoed to the caller.
		uc.l.Errorf(ctx, "executeAddEvent: calendar insert failed for user=%s: %v", sc.UserID, err)
		return chat.ProcessOutput{}, chat.ErrMutationFailed
	}

	uc.l.Infof(ctx, "executeAddEvent: created event id=%s for user=%s", created.ID, sc.UserID)

	return chat.ProcessOutput{
		Reply:     fmt.Sprintf("✅ Successfully added the event **%s** on **%s** at **%s**.", draft.Title, draft.Date, draft.Time),
		EventLink: created.HtmlLink,
	}, nil
}

// decodeDraft converts the model's argument object into an event draft.
// A value of the wrong type fails the whole draft; it is never partially
// applied.
func decodeDraft(args map[string]any) (event.Draft, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return event.Draft{}, fmt.Errorf("failed to encode function arguments: %w", err)
	}

	var draft event.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return event.Draft{}, fmt.Errorf("failed to decode function arguments: %w", err)
	}
	return draft, nil
}
