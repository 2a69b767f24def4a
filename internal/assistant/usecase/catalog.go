package usecase

import (
	"context"
	"fmt"
	"strings"

	"nutrition-assistant/internal/model"
)

func (uc *implUseCase) catalog(
	ctx context.Context,
	text string,
	query string,
	history []model.ChatMessage,
	session model.SessionState,
	goal model.Goal,
) turn {
	mode := string(model.ModeCatalog)
	if strings.TrimSpace(query) == "" {
		query = text
	}

	lk := uc.search(ctx, query, uc.cfg.CatalogPageSize)
	records, meta := filterRelevant(query, lk.records)
	uc.l.Debugf(ctx, "%s: query=%q products=%d provider=%s error=%q status=%d",
		LogPrefixCatalog, query, len(records), lk.provider, lk.errDetail, lk.status)

	if len(records) == 0 {
		short := strings.TrimSpace(strings.Join(head(strings.Fields(query), retryQueryTokens), " "))
		if short != "" && short != query {
			lk = uc.search(ctx, short, uc.cfg.CatalogPageSize)
			records, meta = filterRelevant(short, lk.records)
			uc.l.Debugf(ctx, "%s: retry_query=%q products=%d provider=%s error=%q status=%d",
				LogPrefixCatalog, short, len(records), lk.provider, lk.errDetail, lk.status)
			if len(records) > 0 {
				query = short
			}
		}
	}

	if len(records) == 0 {
		res := uc.responder.Reply(ctx, fmt.Sprintf(PromptCatalogMiss, text), history)
		if res.OK() {
			return turn{source: replySource(res), body: res.Text, mode: mode}
		}
		detail := lk.errDetail
		if detail == "" {
			detail = MsgNoMatchingDetail
		}
		return turn{source: lk.provider, body: fmt.Sprintf(MsgNoCatalogResults, detail), mode: mode}
	}

	if options, ok := uc.disambiguationOptions(query, records); ok {
		body := MsgDisambiguation + "\n\n" + strings.Join(options, "\n")
		return turn{source: SourceDisambiguation, body: body, mode: mode}
	}

	top := head(records, maxContextRecords)
	lines := make([]string, 0, len(top))
	for i, r := range top {
		lines = append(lines, contextLine(i+1, r))
	}
	rows := []model.ComparisonRow{{Query: query, Record: records[0]}}

	res := uc.responder.ReplyWithContext(ctx,
		fmt.Sprintf(PromptCatalogTemplate, sessionText(session), text, goal),
		strings.Join(lines, "\n"),
		history,
	)
	answer := ensureNaturalAnswer(res.Text, rows, goal, false)

	source := groundedSource(res, lk.provider)
	if !res.OK() {
		source = tagWithError(source, res.ErrDetail())
	}
	match := fmt.Sprintf("Match quality\n\n- confidence: %s\n- explanation: %s\n- source: %s", meta.Confidence, meta.Explanation, lk.provider)
	body := strings.Join([]string{answer, buildTable(rows, goal), match}, "\n\n")
	return turn{source: source, body: body, mode: mode}
}

// disambiguationOptions returns a pick list when a short query hits several distinct products.
func (uc *implUseCase) disambiguationOptions(query string, records []model.FoodRecord) ([]string, bool) {
	if len(records) < 2 || len(strings.Fields(query)) > uc.cfg.DisambiguationMaxQueryWords {
		return nil, false
	}
	top := head(records, maxDisambiguationOptions)
	var names []string
	for _, r := range top {
		n := strings.ToLower(strings.TrimSpace(r.Name))
		if n != "" && !containsString(names, n) {
			names = append(names, n)
		}
	}
	if len(names) < uc.cfg.DisambiguationMinNames {
		return nil, false
	}
	options := make([]string, 0, len(top))
	for _, r := range top {
		options = append(options, "- "+r.Name)
	}
	return options, true
}
