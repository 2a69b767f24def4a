package http

import (
	"nutrition-assistant/internal/assistant"
	"nutrition-assistant/pkg/log"
)

// Config bounds what a single chat request may carry.
type Config struct {
	MaxMessageChars int
	MaxHistory      int
}

type handler struct {
	l   log.Logger
	uc  assistant.UseCase
	cfg Config
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, cfg Config) *handler {
	if cfg.MaxMessageChars <= 0 {
		cfg.MaxMessageChars = defaultMaxMessageChars
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = defaultMaxHistory
	}
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
	}
}
