package responder

import (
	"context"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/pkg/llmprovider"
	"nutrition-assistant/pkg/log"
)

// LLM is the generation capability used for replies.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Responder produces free-form replies. It never returns an error:
// failures come back as a marker text with Source set to SourceFallback.
type Responder interface {
	// Reply answers with general nutrition knowledge.
	Reply(ctx context.Context, userText string, history []model.ChatMessage) Result
	// ReplyWithContext answers using only the supplied catalog context.
	ReplyWithContext(ctx context.Context, userText, catalogContext string, history []model.ChatMessage) Result
}

// Config tunes reply calls.
type Config struct {
	HistoryWindow   int
	MaxMessageChars int
	MaxTokens       int
}

type implResponder struct {
	llm LLM
	l   log.Logger
	cfg Config
}

var _ Responder = (*implResponder)(nil)

// New creates a Responder. A nil llm answers every call with MarkerNotConfigured.
func New(llm LLM, l log.Logger, cfg Config) *implResponder {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if cfg.MaxMessageChars <= 0 {
		cfg.MaxMessageChars = DefaultMaxMessageChars
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &implResponder{llm: llm, l: l, cfg: cfg}
}
