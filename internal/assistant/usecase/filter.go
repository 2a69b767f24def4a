package usecase

import (
	"regexp"
	"sort"
	"strings"

	"nutrition-assistant/internal/model"
)

var alnumTokenRe = regexp.MustCompile(`[a-z0-9]+`)

// filterRelevant scores records against the query and drops the weak ones.
func filterRelevant(query string, records []model.FoodRecord) ([]model.FoodRecord, model.MatchMeta) {
	sane := make([]model.FoodRecord, 0, len(records))
	for _, r := range records {
		if r.Plausible() {
			sane = append(sane, r)
		}
	}
	if len(sane) == 0 {
		sane = append(sane, records...)
	}
	if len(sane) == 0 {
		return nil, model.MatchMeta{Confidence: model.ConfidenceLow, Explanation: ExplainNoMatch}
	}

	q := strings.ToLower(query)
	tokens := queryTokens(q)
	if len(tokens) == 0 {
		return head(sane, maxBroadResults), model.MatchMeta{Confidence: model.ConfidenceLow, Explanation: ExplainTooBroad}
	}

	type scored struct {
		score  int
		record model.FoodRecord
	}
	var hits []scored
	for _, r := range sane {
		hay := strings.ToLower(r.Name + " " + r.Brand + " " + r.Ingredients)
		score := 0
		if strings.Contains(hay, q) {
			score += exactMatchScore
		}
		for _, tok := range tokens {
			if strings.Contains(hay, tok) {
				score += tokenMatchScore
			}
		}
		if strings.HasPrefix(strings.ToLower(r.Name), tokens[0]) {
			score += prefixMatchScore
		}
		if score > 0 {
			hits = append(hits, scored{score: score, record: r})
		}
	}

	if len(hits) == 0 {
		return head(sane, maxBroadResults), model.MatchMeta{Confidence: model.ConfidenceLow, Explanation: ExplainBroadResults}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	best := hits[0].score
	minScore := best - keepScoreWindow
	if minScore < minKeepScore {
		minScore = minKeepScore
	}

	out := make([]model.FoodRecord, 0, len(hits))
	for _, h := range hits {
		if h.score >= minScore {
			out = append(out, h.record)
		}
	}

	meta := model.MatchMeta{Confidence: model.ConfidenceLow, Explanation: ExplainPartial}
	switch {
	case best >= exactMatchScore:
		meta = model.MatchMeta{Confidence: model.ConfidenceHigh, Explanation: ExplainExact}
	case best >= mediumConfidenceScore:
		meta.Confidence = model.ConfidenceMedium
	}
	return out, meta
}

// queryTokens returns tokens of length >= 3 plus their plural-stripped variants, deduplicated in order.
func queryTokens(q string) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, tok := range alnumTokenRe.FindAllString(q, -1) {
		if len(tok) < minTokenLen {
			continue
		}
		add(tok)
		if strings.HasSuffix(tok, "es") && len(tok) > 4 {
			add(tok[:len(tok)-2])
		}
		if strings.HasSuffix(tok, "s") && len(tok) > 3 {
			add(tok[:len(tok)-1])
		}
	}
	return out
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
