package usecase

import "calendar-assistant/pkg/gemini"

// ActionAddEvent is the only calendar action the model may invoke.
const ActionAddEvent = "add_event"

// SystemInstruction establishes the assistant's role and capabilities.
const SystemInstruction = "You are a helpful calendar assistant that can read calendar data, " +
	"answer questions about events, suggest how to plan future events, and make direct changes " +
	"to the calendar by calling functions like add_event when appropriate."

// calendarContextPrefix labels the caller's calendar snapshot so the model
// treats it as facts, separate from the user's instruction.
const calendarContextPrefix = "Here is the user's calendar data:\n"

// Generation bounds. Tuning values, but output length must stay bounded.
const (
	generationTemperature = 0.7
	generationMaxTokens   = 500
)

// addEventDeclaration describes add_event to the model. Every parameter the
// interpreter decodes appears here, so the model cannot emit a field the
// executor does not understand.
func addEventDeclaration() gemini.FunctionDeclaration {
	return gemini.FunctionDeclaration{
		Name:        ActionAddEvent,
		Description: "Add a new event to the user's calendar.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "The title of the event.",
				},
				"date": map[string]any{
					"type":        "string",
					"format":      "date",
					"description": "The date of the event in YYYY-MM-DD format.",
				},
				"time": map[string]any{
					"type":        "string",
					"description": "The start time of the event in HH:MM AM/PM or 24-hour HH:MM format.",
				},
				"endTime": map[string]any{
					"type":        "string",
					"description": "The end time of the event, same formats as time. Overrides duration.",
				},
				"duration": map[string]any{
					"type":        "integer",
					"description": "The duration of the event in minutes. Defaults to 60.",
				},
				"endDate": map[string]any{
					"type":        "string",
					"format":      "date",
					"description": "The end date in YYYY-MM-DD format, for events spanning multiple days.",
				},
				"location": map[string]any{
					"type":        "string",
					"description": "The location of the event.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "A brief description of the event.",
				},
				"timeZone": map[string]any{
					"type":        "string",
					"description": "IANA timezone name for the event, e.g. America/Los_Angeles.",
				},
			},
			"required": []string{"title", "date", "time"},
		},
	}
}
