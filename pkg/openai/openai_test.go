package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrition-assistant/pkg/openai"
)

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"type":"auth","message":"bad key"}}`))
			return
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		msgs := body["messages"].([]interface{})
		last := msgs[len(msgs)-1].(map[string]interface{})["content"].(string)
		if last == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
			return
		}

		content := "plain answer"
		if rf, ok := body["response_format"].(map[string]interface{}); ok && rf["type"] == "json_object" {
			content = `{"mode":"catalog"}`
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    "cmpl-1",
			"model": "test-model",
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "  " + content + "\n"}, "finish_reason": "stop"},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		})
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-key", Model: "test-model", BaseURL: ts.URL + "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("text completion", func(t *testing.T) {
		resp, err := client.ChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "system", Content: "be brief"}, {Role: "user", Content: "hi"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "plain answer" {
			t.Errorf("expected trimmed text, got %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("json mode", func(t *testing.T) {
		resp, err := client.ChatCompletion(context.Background(), &openai.Request{
			Messages:       []openai.Message{{Role: "user", Content: "route this"}},
			ResponseFormat: openai.ResponseFormatJSON,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"mode":"catalog"}` {
			t.Errorf("unexpected json text: %q", resp.Text)
		}
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.ChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("auth error carries api message", func(t *testing.T) {
		bad, _ := openai.New(openai.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := bad.ChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "hi"}},
		})
		if err == nil || err.Error() != "openai: API error 401: bad key" {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := openai.Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg = openai.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != openai.DefaultModel || cfg.BaseURL != openai.DefaultBaseURL || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
