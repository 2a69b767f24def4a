package intent

import (
	"regexp"
	"strings"

	"nutrition-assistant/internal/model"
)

var (
	nonAlnumRe    = regexp.MustCompile(`[^a-z0-9\s]`)
	spacesRe      = regexp.MustCompile(`\s+`)
	lettersRe     = regexp.MustCompile(`[a-z]+`)
	queryStopRe   = regexp.MustCompile(`\b(i|want|to|know|if|can you|could you|please|tell me|about|how many|what are|what is|there|in|the|a|an|bottle|facts|nutrition|nutritional|for|of)\b`)
	itemStopRe    = regexp.MustCompile(`\b(i|want|to|know|if|the|a|an|of|for|nutrition|nutritional|facts|calories|calorie|electrolytes|has|more|better|which|content|less|lower|higher|see|dense|than|is|are|there)\b`)
	compareWordRe = regexp.MustCompile(`\b(which has better|compare|versus|vs|better than|with)\b`)
	splitterRe    = regexp.MustCompile(`\bor\b|\band\b|\bwith\b`)
)

// Fallback is the deterministic rule-based extractor.
func Fallback(text string) model.Intent {
	lower := strings.ToLower(text)

	if containsAny(lower, fallbackCompareCues) {
		if items := extractCompareItems(lower); len(items) >= 2 {
			return model.Intent{
				Mode:         model.ModeCompare,
				FoodQuery:    strings.Join(items, " "),
				CompareItems: items,
				Source:       model.IntentSourceFallback,
			}
		}
	}

	if containsAny(lower, correctionCues) {
		return model.Intent{Mode: model.ModeCorrection, FoodQuery: correctionFoodQuery, Source: model.IntentSourceFallback}
	}

	if containsAny(lower, memoryCues) {
		return model.Intent{Mode: model.ModeMemory, FoodQuery: memoryFoodQuery, Source: model.IntentSourceFallback}
	}

	cleaned := nonAlnumRe.ReplaceAllString(lower, " ")
	cleaned = queryStopRe.ReplaceAllString(cleaned, " ")
	tokens := strings.Fields(cleaned)
	query := strings.TrimSpace(lower)
	if len(tokens) > 0 {
		if len(tokens) > maxQueryTokens {
			tokens = tokens[:maxQueryTokens]
		}
		query = strings.Join(tokens, " ")
	}
	if query == "" {
		query = defaultFoodQuery
	}

	mode := model.ModeCatalog
	switch {
	case containsAny(lower, catalogClassCues):
		mode = model.ModeCatalog
	case containsAny(lower, generalClassCues):
		mode = model.ModeGeneral
	}

	out := model.Intent{Mode: mode, FoodQuery: query, Source: model.IntentSourceFallback}
	if IsNaturalFood(out) {
		out.Mode = model.ModeGeneral
	}
	return out
}

// IsNaturalFood reports whether the query or compare items name a whole food.
// Memory and correction intents never qualify.
func IsNaturalFood(in model.Intent) bool {
	if in.Mode == model.ModeMemory || in.Mode == model.ModeCorrection {
		return false
	}
	hay := strings.ToLower(in.FoodQuery + " " + strings.Join(in.CompareItems, " "))
	for _, tok := range lettersRe.FindAllString(hay, -1) {
		if _, ok := naturalFoods[tok]; ok {
			return true
		}
	}
	return false
}

// HasCatalogCue reports whether the text explicitly asks for a product lookup.
func HasCatalogCue(text string) bool {
	return containsAny(strings.ToLower(text), catalogForceCues)
}

// extractCompareItems splits lowercased text into at most four items.
func extractCompareItems(lower string) []string {
	text := nonAlnumRe.ReplaceAllString(lower, " ")
	text = compareWordRe.ReplaceAllString(text, " ")

	var items []string
	for _, part := range splitterRe.Split(text, -1) {
		cleaned := normalizeCompareItem(part)
		if cleaned == "" || contains(items, cleaned) {
			continue
		}
		if len(cleaned) > maxCompareItemChars {
			cleaned = cleaned[:maxCompareItemChars]
		}
		items = append(items, cleaned)
	}
	return capItems(items)
}

// normalizeCompareItem strips filler words and keeps the first four tokens.
func normalizeCompareItem(text string) string {
	cleaned := nonAlnumRe.ReplaceAllString(strings.ToLower(text), " ")
	cleaned = itemStopRe.ReplaceAllString(cleaned, " ")
	tokens := strings.Fields(spacesRe.ReplaceAllString(cleaned, " "))
	if len(tokens) > maxCompareItemTokens {
		tokens = tokens[:maxCompareItemTokens]
	}
	return strings.Join(tokens, " ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

func appendUnique(items []string, s string) []string {
	if s == "" || contains(items, s) {
		return items
	}
	return append(items, s)
}
