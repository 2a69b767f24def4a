package http

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"nutrition-assistant/internal/assistant"
	"nutrition-assistant/internal/model"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate(h.cfg)
}

func (r chatReq) validate(cfg Config) error {
	if r.Message == "" {
		return assistant.ErrEmptyMessage
	}
	if utf8.RuneCountInString(r.Message) > cfg.MaxMessageChars {
		return assistant.ErrMessageTooLong
	}
	if len(r.History) > cfg.MaxHistory {
		return assistant.ErrHistoryTooLarge
	}
	for _, m := range r.History {
		switch strings.ToLower(strings.TrimSpace(m.Role)) {
		case model.RoleUser, model.RoleAssistant:
		default:
			return assistant.ErrInvalidRole
		}
	}
	return nil
}
