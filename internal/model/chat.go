package model

import "strings"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one caller-supplied history entry.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RecentHistory returns the user and assistant entries among the last window
// history entries, trimmed and cut to maxChars runes. Blank entries are dropped.
func RecentHistory(history []ChatMessage, window, maxChars int) []ChatMessage {
	if window > 0 && len(history) > window {
		history = history[len(history)-window:]
	}
	out := make([]ChatMessage, 0, len(history))
	for _, msg := range history {
		role := strings.ToLower(strings.TrimSpace(msg.Role))
		if role != RoleUser && role != RoleAssistant {
			continue
		}
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		if maxChars > 0 {
			if r := []rune(content); len(r) > maxChars {
				content = string(r[:maxChars])
			}
		}
		out = append(out, ChatMessage{Role: role, Content: content})
	}
	return out
}
