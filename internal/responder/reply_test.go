package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/pkg/llmprovider"
	"nutrition-assistant/pkg/log"
)

type stubLLM struct {
	text string
	err  error
	last *llmprovider.Request
}

func (s *stubLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Text: s.text, ProviderName: "stub"}, nil
}

func TestReply(t *testing.T) {
	llm := &stubLLM{text: "  Eat more fiber.  "}
	r := New(llm, log.NewNop(), Config{})

	history := make([]model.ChatMessage, 0, 10)
	for i := 0; i < 10; i++ {
		history = append(history, model.ChatMessage{Role: "user", Content: fmt.Sprintf("msg %d", i)})
	}

	res := r.Reply(context.Background(), "how do I eat healthier?", history)
	if !res.OK() || res.Text != "Eat more fiber." || res.Provider != "stub" {
		t.Errorf("unexpected result: %+v", res)
	}
	if llm.last.SystemInstruction != PromptGeneralSystem {
		t.Error("expected general prompt")
	}
	if len(llm.last.Messages) != DefaultHistoryWindow+1 {
		t.Errorf("expected %d messages, got %d", DefaultHistoryWindow+1, len(llm.last.Messages))
	}
	if llm.last.MaxTokens != DefaultMaxTokens {
		t.Errorf("expected max tokens %d, got %d", DefaultMaxTokens, llm.last.MaxTokens)
	}
}

func TestReplyWithContext(t *testing.T) {
	llm := &stubLLM{text: "Snickers has 488 kcal."}
	r := New(llm, log.NewNop(), Config{})

	res := r.ReplyWithContext(context.Background(), "snickers", "1. Snickers | kcal_100g=488", nil)
	if !res.OK() {
		t.Fatalf("unexpected failure: %+v", res)
	}
	last := llm.last.Messages[len(llm.last.Messages)-1].Content
	if !strings.Contains(last, "CATALOG_CONTEXT:\n1. Snickers") || llm.last.SystemInstruction != PromptCatalogSystem {
		t.Errorf("unexpected grounded request: %q", last)
	}
}

func TestReply_Failures(t *testing.T) {
	cases := []struct {
		name   string
		llm    LLM
		marker string
	}{
		{"nil llm", nil, MarkerNotConfigured},
		{"no providers", &stubLLM{err: llmprovider.ErrNoProvidersConfigured}, MarkerNotConfigured},
		{"transport", &stubLLM{err: errors.New("dial tcp: refused")}, MarkerRequestFailed},
		{"empty text", &stubLLM{text: "   "}, MarkerEmptyResponse},
		{"empty wrapped", &stubLLM{err: fmt.Errorf("%w: %w", llmprovider.ErrAllProvidersFailed, llmprovider.ErrEmptyResponse)}, MarkerEmptyResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := New(tc.llm, log.NewNop(), Config{}).Reply(context.Background(), "hi", nil)
			if res.OK() || res.Source != SourceFallback {
				t.Errorf("expected fallback, got %+v", res)
			}
			if res.Text != tc.marker {
				t.Errorf("text = %q, want %q", res.Text, tc.marker)
			}
			if res.ErrDetail() == "" {
				t.Error("expected error detail")
			}
			if !IsFailureMarker(res.Text) {
				t.Error("marker not recognized")
			}
		})
	}
}

func TestIsFailureMarker(t *testing.T) {
	if !IsFailureMarker("   ") {
		t.Error("blank text is a failure")
	}
	if IsFailureMarker("Snickers is high in sugar.") {
		t.Error("normal text is not a failure")
	}
}
