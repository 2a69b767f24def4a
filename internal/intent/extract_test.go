package intent

import (
	"context"
	"errors"
	"reflect"
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

func TestFallback(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		mode  model.Mode
		query string
		items []string
	}{
		{"compare and", "Compare Snickers and Kit Kat", model.ModeCompare, "snickers kit kat", []string{"snickers", "kit kat"}},
		{"or dedup", "coke or pepsi or coke?", model.ModeCompare, "coke pepsi", []string{"coke", "pepsi"}},
		{"vs is stripped not split", "coke vs pepsi or sprite", model.ModeCompare, "coke pepsi sprite", []string{"coke pepsi", "sprite"}},
		{"correction", "your answer wasn't related to my question", model.ModeCorrection, correctionFoodQuery, nil},
		{"memory", "What products did we look at?", model.ModeMemory, memoryFoodQuery, nil},
		{"brand catalog", "nutrition facts for a snickers bar", model.ModeCatalog, "snickers bar", nil},
		{"general cue", "is it good to drink soda daily", model.ModeGeneral, "is it good drink soda", nil},
		{"default catalog", "doritos cool ranch", model.ModeCatalog, "doritos cool ranch", nil},
		{"natural food", "apple nutrition facts", model.ModeGeneral, "apple", nil},
		{"only stopwords", "the", model.ModeCatalog, "the", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.text)
			if got.Mode != tt.mode {
				t.Errorf("mode = %s, want %s", got.Mode, tt.mode)
			}
			if got.FoodQuery != tt.query {
				t.Errorf("food_query = %q, want %q", got.FoodQuery, tt.query)
			}
			if !reflect.DeepEqual(got.CompareItems, tt.items) {
				t.Errorf("compare_items = %v, want %v", got.CompareItems, tt.items)
			}
			if got.Source != model.IntentSourceFallback {
				t.Errorf("source = %s, want fallback", got.Source)
			}
		})
	}
}

func TestFallback_CompareItemLimits(t *testing.T) {
	got := Fallback("compare a or b2 or c3 or d4 or e5")
	if len(got.CompareItems) != model.MaxCompareItems {
		t.Fatalf("expected %d items, got %v", model.MaxCompareItems, got.CompareItems)
	}

	long := Fallback("compare supercalifragilistic expialidocious wonderbar chocolates deluxe or pepsi")
	if long.CompareItems[0] != "supercalifragilistic expialidocious wond" {
		t.Errorf("expected 4-token then 40-char cap, got %q", long.CompareItems[0])
	}
}

func TestExtract_LLMPath(t *testing.T) {
	llm := &stubLLM{text: "```json\n{\"mode\":\"Catalog\",\"food_query\":\"Snickers Chocolate Bar\",\"compare_items\":[]}\n```"}
	ex := New(llm, log.NewNop(), Config{})

	got := ex.Extract(context.Background(), "nutritional breakdown of a snickers bar", nil)
	if got.Mode != model.ModeCatalog || got.FoodQuery != "snickers chocolate bar" || got.Source != model.IntentSourceLLM {
		t.Errorf("unexpected intent: %+v", got)
	}
	if !llm.last.JSONMode || llm.last.SystemInstruction != PromptExtractionSystem {
		t.Errorf("extraction request must use JSON mode and the router prompt")
	}
	if len(llm.last.Messages) != 1 {
		t.Errorf("history must not be sent by default, got %d messages", len(llm.last.Messages))
	}
}

func TestExtract_WithHistory(t *testing.T) {
	llm := &stubLLM{text: `{"mode":"general","food_query":"protein intake","compare_items":[]}`}
	ex := New(llm, log.NewNop(), Config{UseHistory: true, HistoryWindow: 2})

	history := []model.ChatMessage{
		{Role: "user", Content: "one"},
		{Role: "assistant", Content: "two"},
		{Role: "user", Content: "three"},
	}
	ex.Extract(context.Background(), "how much protein per day", history)
	if len(llm.last.Messages) != 3 {
		t.Errorf("expected 2 history entries plus the message, got %d", len(llm.last.Messages))
	}
}

func TestExtract_FallsBack(t *testing.T) {
	cases := map[string]*stubLLM{
		"llm error":    {err: errors.New("boom")},
		"not json":     {text: "I think you want snickers"},
		"invalid mode": {text: `{"mode":"search","food_query":"snickers","compare_items":[]}`},
		"empty query":  {text: `{"mode":"catalog","food_query":"  ","compare_items":[]}`},
	}
	for name, llm := range cases {
		t.Run(name, func(t *testing.T) {
			got := New(llm, log.NewNop(), Config{}).Extract(context.Background(), "snickers bar", nil)
			if got.Source != model.IntentSourceFallback || got.Mode != model.ModeCatalog {
				t.Errorf("expected fallback catalog intent, got %+v", got)
			}
		})
	}

	t.Run("nil llm", func(t *testing.T) {
		got := New(nil, log.NewNop(), Config{}).Extract(context.Background(), "snickers bar", nil)
		if got.Source != model.IntentSourceFallback {
			t.Errorf("expected fallback, got %+v", got)
		}
	})
}

func TestExtract_EnforcesCompareMode(t *testing.T) {
	llm := &stubLLM{text: `{"mode":"catalog","food_query":"snickers","compare_items":[]}`}
	got := New(llm, log.NewNop(), Config{}).Extract(context.Background(), "compare snickers and twix", nil)

	if got.Mode != model.ModeCompare {
		t.Fatalf("expected compare override, got %s", got.Mode)
	}
	if !reflect.DeepEqual(got.CompareItems, []string{"snickers", "twix"}) {
		t.Errorf("unexpected items %v", got.CompareItems)
	}
}

func TestExtract_KeepsLLMCompareItems(t *testing.T) {
	llm := &stubLLM{text: `{"mode":"compare","food_query":"prime monster sugar","compare_items":["Prime Energy Drink","monster energy drink","Prime Energy Drink"]}`}
	got := New(llm, log.NewNop(), Config{}).Extract(context.Background(), "can you compare a prime energy drink with a monster energy drink for less sugar content", nil)

	want := []string{"prime energy drink", "monster energy drink"}
	if got.Mode != model.ModeCompare || !reflect.DeepEqual(got.CompareItems, want) {
		t.Errorf("got %+v, want items %v", got, want)
	}
}

func TestExtract_NaturalFoodOverride(t *testing.T) {
	llm := &stubLLM{text: `{"mode":"catalog","food_query":"apple","compare_items":[]}`}
	got := New(llm, log.NewNop(), Config{}).Extract(context.Background(), "apple nutrition facts", nil)
	if got.Mode != model.ModeGeneral {
		t.Errorf("expected general for a whole food, got %s", got.Mode)
	}
}

func TestIsNaturalFood(t *testing.T) {
	if !IsNaturalFood(model.Intent{Mode: model.ModeCompare, FoodQuery: "x", CompareItems: []string{"banana bread"}}) {
		t.Error("compare items should be checked")
	}
	if IsNaturalFood(model.Intent{Mode: model.ModeMemory, FoodQuery: "apple"}) {
		t.Error("memory intents never qualify")
	}
	if IsNaturalFood(model.Intent{Mode: model.ModeCatalog, FoodQuery: "pineapples"}) {
		t.Error("matching is by whole token")
	}
}

func TestHasCatalogCue(t *testing.T) {
	if !HasCatalogCue("Show me protein bars") {
		t.Error("expected cue")
	}
	if HasCatalogCue("is sugar bad") {
		t.Error("unexpected cue")
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```":       `{"a":1}`,
		"Sure! {\"a\":1} hope it helps": `{"a":1}`,
		"no json here":                  "no json here",
	}
	for in, want := range cases {
		if got := sanitizeJSONResponse(in); got != want {
			t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", in, got, want)
		}
	}
}
