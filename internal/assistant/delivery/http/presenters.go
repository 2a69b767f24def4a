package http

import (
	"nutrition-assistant/internal/assistant"
	"nutrition-assistant/internal/model"
)

// --- Request DTOs ---

type historyItem struct {
	Role    string `json:"role"    binding:"required"`
	Content string `json:"content"`
}

type chatReq struct {
	Message string        `json:"message" binding:"required"`
	History []historyItem `json:"history"`
}

func (r chatReq) toInput() assistant.AnswerInput {
	history := make([]model.ChatMessage, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, model.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return assistant.AnswerInput{
		Message: r.Message,
		History: history,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
	Mode   string `json:"mode"`
}

func (h *handler) newChatResp(out assistant.AnswerOutput) chatResp {
	return chatResp{
		Reply:  out.Reply,
		Source: out.Source,
		Mode:   out.Mode,
	}
}
