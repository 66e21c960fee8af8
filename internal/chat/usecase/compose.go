package usecase

import (
	"calendar-assistant/internal/chat"
	"calendar-assistant/pkg/gemini"
)

// composeModelRequest builds the model request for one chat turn: system
// instruction, calendar context as its own model-role message, then the
// user's message. The add_event function is declared only for the manage
// intent; a chat-only request cannot trigger a mutation. Pure, no side
// effects.
func composeModelRequest(input chat.ProcessInput) gemini.GenerateRequest {
	req := gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: SystemInstruction}},
		},
		Contents: []gemini.Content{
			{
				Role:  "model",
				Parts: []gemini.Part{{Text: calendarContextPrefix + input.CalendarData}},
			},
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: input.Message}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: generationMaxTokens,
		},
	}

	if input.Intent == chat.IntentManage {
		req.Tools = []gemini.Tool{
			{FunctionDeclarations: []gemini.FunctionDeclaration{addEventDeclaration()}},
		}
		req.ToolConfig = &gemini.ToolConfig{
			FunctionCallingConfig: &gemini.FunctionCallingConfig{
				Mode: gemini.FunctionCallingModeAuto,
			},
		}
	}

	return req
}
