package assistant

import "nutrition-assistant/internal/model"

// Reply modes that do not come from intent extraction.
const (
	ModeGreeting = "greeting"
	ModeEmpty    = "empty"
)

// AnswerInput is one user turn with the caller-supplied history.
type AnswerInput struct {
	Message string
	History []model.ChatMessage
}

// AnswerOutput is the reply for one turn.
type AnswerOutput struct {
	Reply  string // starts with the "[source: ...]" tag
	Source string // provenance, same value as inside the tag
	Mode   string // branch that produced the reply
}
