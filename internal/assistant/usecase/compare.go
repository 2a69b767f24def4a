package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/internal/responder"
)

func (uc *implUseCase) compare(
	ctx context.Context,
	text string,
	in model.Intent,
	history []model.ChatMessage,
	session model.SessionState,
	goal model.Goal,
) turn {
	mode := string(model.ModeCompare)
	if needsGoalClarification(text) {
		return turn{source: SourceClarification, body: MsgClarifyCompare, mode: mode}
	}

	items := in.CompareItems
	if len(items) < 2 {
		items = splitCompareItems(in.FoodQuery)
	}
	if len(items) < 2 {
		res := uc.responder.Reply(ctx, PromptCompareClarify, history)
		return turn{source: replySource(res), body: res.Text, mode: mode}
	}
	if len(items) > model.MaxCompareItems {
		items = items[:model.MaxCompareItems]
	}

	lookups := uc.searchAll(ctx, items)

	var (
		rows         []model.ComparisonRow
		contexts     []string
		explanations []string
		providers    []string
		totalHits    int
	)
	for _, lk := range lookups {
		filtered, meta := filterRelevant(lk.query, lk.records)
		totalHits += len(filtered)
		uc.l.Debugf(ctx, "%s: compare_item=%q raw_hits=%d filtered_hits=%d provider=%s error=%q status=%d",
			LogPrefixCompare, lk.query, len(lk.records), len(filtered), lk.provider, lk.errDetail, lk.status)

		if len(filtered) == 0 {
			contexts = append(contexts, fmt.Sprintf("ITEM_QUERY: %s\n- No relevant matches in catalog.", lk.query))
			continue
		}
		if !containsString(providers, lk.provider) {
			providers = append(providers, lk.provider)
		}
		explanations = append(explanations,
			fmt.Sprintf("- %s: %s confidence, %s, source=%s", lk.query, meta.Confidence, meta.Explanation, lk.provider))

		rows = append(rows, model.ComparisonRow{Query: lk.query, Record: filtered[0]})
		lines := make([]string, 0, maxCompareContextRecords)
		for i, r := range head(filtered, maxCompareContextRecords) {
			lines = append(lines, contextLine(i+1, r))
		}
		contexts = append(contexts, fmt.Sprintf("ITEM_QUERY: %s | SOURCE: %s\n%s", lk.query, lk.provider, strings.Join(lines, "\n")))
	}

	if totalHits == 0 {
		res := uc.responder.Reply(ctx, fmt.Sprintf(PromptCompareNoMatches, text), history)
		return turn{source: replySource(res), body: res.Text, mode: mode}
	}

	res := uc.responder.ReplyWithContext(ctx,
		fmt.Sprintf(PromptCompareTemplate, sessionText(session), text, goal),
		strings.Join(contexts, "\n\n"),
		history,
	)
	answer := ensureNaturalAnswer(res.Text, rows, goal, true)

	source := groundedSource(res, strings.Join(providers, ",")) + compareSuffix
	if !res.OK() {
		source = tagWithError(source, res.ErrDetail())
	}
	body := strings.Join([]string{answer, buildTable(rows, goal), "Match quality\n\n" + strings.Join(explanations, "\n")}, "\n\n")
	return turn{source: source, body: body, mode: mode}
}

// searchAll looks up every item concurrently. Results keep the order of items.
func (uc *implUseCase) searchAll(ctx context.Context, items []string) []lookup {
	results := make([]lookup, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			results[i] = uc.search(gctx, item, uc.cfg.ComparePageSize)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// splitCompareItems splits a free-text query on "or", "and" and "versus".
func splitCompareItems(query string) []string {
	q := strings.ReplaceAll(query, " versus ", " vs ")
	q = strings.ReplaceAll(q, " and ", " or ")

	var parts []string
	for _, chunk := range strings.Split(q, " or ") {
		item := strings.TrimSpace(strings.ReplaceAll(chunk, " vs ", " "))
		if item != "" && !containsString(parts, item) {
			parts = append(parts, item)
		}
	}
	if len(parts) > model.MaxCompareItems {
		parts = parts[:model.MaxCompareItems]
	}
	return parts
}

// groundedSource tags a reply grounded on catalog data, e.g. "llm+usda".
func groundedSource(res responder.Result, provider string) string {
	if res.OK() {
		return string(responder.SourceLLM) + "+" + provider
	}
	return string(responder.SourceFallback) + "+" + provider
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
