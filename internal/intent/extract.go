package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/pkg/llmprovider"
)

type extractionOutput struct {
	Mode         string `json:"mode"`
	FoodQuery    string `json:"food_query"`
	CompareItems []any  `json:"compare_items"`
}

// Extract classifies text with the LLM and falls back to the heuristic on any failure.
func (e *implExtractor) Extract(ctx context.Context, text string, history []model.ChatMessage) model.Intent {
	fallback := Fallback(text)
	if e.llm == nil {
		return fallback
	}

	resp, err := e.llm.GenerateContent(ctx, e.buildRequest(text, history))
	if err != nil {
		e.l.Debugf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgLLMCallFailed, err)
		return fallback
	}

	var out extractionOutput
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(resp.Text)), &out); err != nil {
		e.l.Debugf(ctx, "%s: %s: %v raw=%q", LogPrefixExtract, ErrMsgJSONParseFailed, err, resp.Text)
		return fallback
	}

	mode := model.Mode(strings.ToLower(strings.TrimSpace(out.Mode)))
	query := strings.ToLower(strings.TrimSpace(out.FoodQuery))
	if !mode.Valid() || query == "" {
		e.l.Debugf(ctx, "%s: %s: mode=%q food_query=%q", LogPrefixExtract, ErrMsgInvalidOutput, out.Mode, out.FoodQuery)
		return fallback
	}

	var items []string
	for _, raw := range out.CompareItems {
		items = appendUnique(items, normalizeCompareItem(fmt.Sprint(raw)))
	}
	if len(items) > model.MaxCompareItems {
		items = items[:model.MaxCompareItems]
	}

	result := enforceCompareMode(text, model.Intent{
		Mode:         mode,
		FoodQuery:    query,
		CompareItems: items,
		Source:       model.IntentSourceLLM,
	}, fallback)
	if IsNaturalFood(result) {
		result.Mode = model.ModeGeneral
	}

	e.l.Debugf(ctx, "%s: mode=%s food_query=%q compare_items=%v", LogPrefixExtract, result.Mode, result.FoodQuery, result.CompareItems)
	return result
}

func (e *implExtractor) buildRequest(text string, history []model.ChatMessage) *llmprovider.Request {
	var messages []llmprovider.Message
	if e.cfg.UseHistory {
		for _, m := range model.RecentHistory(history, e.cfg.HistoryWindow, e.cfg.MaxMessageChars) {
			messages = append(messages, llmprovider.Message{Role: m.Role, Content: m.Content})
		}
	}
	messages = append(messages, llmprovider.Message{Role: model.RoleUser, Content: text})

	return &llmprovider.Request{
		SystemInstruction: PromptExtractionSystem,
		Messages:          messages,
		MaxTokens:         e.cfg.MaxTokens,
		JSONMode:          true,
	}
}

// enforceCompareMode switches to compare mode when the text carries comparison
// cues but the extraction did not produce at least two items.
func enforceCompareMode(text string, extracted, fallback model.Intent) model.Intent {
	if !containsAny(strings.ToLower(text), enforceCompareCues) {
		return extracted
	}

	items := nonEmptyNormalized(extracted.CompareItems)
	if extracted.Mode == model.ModeCompare && len(items) >= 2 {
		extracted.CompareItems = capItems(items)
		return extracted
	}

	fbItems := nonEmptyNormalized(fallback.CompareItems)
	if len(fbItems) >= 2 {
		fbItems = capItems(fbItems)
		extracted.Mode = model.ModeCompare
		extracted.FoodQuery = strings.Join(fbItems, " ")
		extracted.CompareItems = fbItems
	}
	return extracted
}

func nonEmptyNormalized(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := normalizeCompareItem(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func capItems(items []string) []string {
	if len(items) > model.MaxCompareItems {
		return items[:model.MaxCompareItems]
	}
	return items
}
