package intent

import (
	"context"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/pkg/llmprovider"
	"nutrition-assistant/pkg/log"
)

// LLM is the generation capability used for extraction.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Extractor turns a user message into a structured Intent.
// Extract never fails: any LLM problem falls back to the heuristic.
type Extractor interface {
	Extract(ctx context.Context, text string, history []model.ChatMessage) model.Intent
}

// Config tunes the extraction call.
type Config struct {
	// UseHistory sends the windowed history with the extraction request.
	UseHistory      bool
	HistoryWindow   int
	MaxMessageChars int
	MaxTokens       int
}

func (c *Config) applyDefaults() {
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = DefaultHistoryWindow
	}
	if c.MaxMessageChars <= 0 {
		c.MaxMessageChars = DefaultMaxMessageChars
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
}

type implExtractor struct {
	llm LLM
	l   log.Logger
	cfg Config
}

var _ Extractor = (*implExtractor)(nil)

// New creates an Extractor. A nil llm makes every call use the heuristic.
func New(llm LLM, l log.Logger, cfg Config) *implExtractor {
	cfg.applyDefaults()
	return &implExtractor{
		llm: llm,
		l:   l,
		cfg: cfg,
	}
}
