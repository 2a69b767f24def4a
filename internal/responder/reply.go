package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/pkg/llmprovider"
)

// Reply answers with general nutrition knowledge.
func (r *implResponder) Reply(ctx context.Context, userText string, history []model.ChatMessage) Result {
	return r.generate(ctx, PromptGeneralSystem, userText, history)
}

// ReplyWithContext answers using only the supplied catalog context.
func (r *implResponder) ReplyWithContext(ctx context.Context, userText, catalogContext string, history []model.ChatMessage) Result {
	return r.generate(ctx, PromptCatalogSystem, fmt.Sprintf(catalogUserTemplate, userText, catalogContext), history)
}

func (r *implResponder) generate(ctx context.Context, system, userText string, history []model.ChatMessage) Result {
	if r.llm == nil {
		return Result{Text: MarkerNotConfigured, Source: SourceFallback, Err: llmprovider.ErrNoProvidersConfigured}
	}

	recent := model.RecentHistory(history, r.cfg.HistoryWindow, r.cfg.MaxMessageChars)
	messages := make([]llmprovider.Message, 0, len(recent)+1)
	for _, m := range recent {
		messages = append(messages, llmprovider.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llmprovider.Message{Role: model.RoleUser, Content: userText})

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: system,
		Messages:          messages,
		MaxTokens:         r.cfg.MaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %v", LogPrefixReply, err)
		return failure(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		r.l.Warnf(ctx, "%s: provider %s returned no text", LogPrefixReply, resp.ProviderName)
		return failure(llmprovider.ErrEmptyResponse)
	}

	return Result{Text: text, Source: SourceLLM, Provider: resp.ProviderName}
}

func failure(err error) Result {
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return Result{Text: MarkerNotConfigured, Source: SourceFallback, Err: err}
	case errors.Is(err, llmprovider.ErrEmptyResponse):
		return Result{Text: MarkerEmptyResponse, Source: SourceFallback, Err: err}
	default:
		return Result{Text: MarkerRequestFailed, Source: SourceFallback, Err: err}
	}
}
