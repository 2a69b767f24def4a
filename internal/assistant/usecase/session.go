package usecase

import (
	"context"
	"strings"

	"nutrition-assistant/internal/model"
)

// buildSessionState derives recalled products and the active goal from the whole history.
func (uc *implUseCase) buildSessionState(ctx context.Context, history []model.ChatMessage) model.SessionState {
	state := model.SessionState{
		Products: uc.recallProducts(ctx, history),
		Goal:     model.DefaultGoal,
	}
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if !isUserMessage(msg) {
			continue
		}
		if goal, ok := goalFromKeywords(msg.Content); ok {
			state.Goal = goal
			break
		}
	}
	return state
}

// recallProducts re-extracts every user message and keeps catalog queries and compare items.
func (uc *implUseCase) recallProducts(ctx context.Context, history []model.ChatMessage) []string {
	var found []string
	seen := make(map[string]struct{})
	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" {
			return
		}
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		found = append(found, q)
	}

	for _, msg := range history {
		if !isUserMessage(msg) {
			continue
		}
		in := uc.extractor.Extract(ctx, strings.TrimSpace(msg.Content), nil)
		switch in.Mode {
		case model.ModeCatalog:
			add(in.FoodQuery)
		case model.ModeCompare:
			for _, item := range in.CompareItems {
				add(item)
			}
		}
	}

	if len(found) > model.MaxSessionProducts {
		found = found[len(found)-model.MaxSessionProducts:]
	}
	return found
}

// latestActionableQuery returns the newest user message that is neither memory nor correction.
func (uc *implUseCase) latestActionableQuery(ctx context.Context, history []model.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if !isUserMessage(msg) {
			continue
		}
		text := strings.TrimSpace(msg.Content)
		in := uc.extractor.Extract(ctx, text, nil)
		if in.Mode == model.ModeMemory || in.Mode == model.ModeCorrection {
			continue
		}
		return text
	}
	return ""
}

func isUserMessage(msg model.ChatMessage) bool {
	return strings.EqualFold(strings.TrimSpace(msg.Role), model.RoleUser) && strings.TrimSpace(msg.Content) != ""
}

func sessionText(state model.SessionState) string {
	products := "none"
	if len(state.Products) > 0 {
		products = strings.Join(state.Products, ", ")
	}
	goal := state.Goal
	if goal == "" {
		goal = model.DefaultGoal
	}
	return "products=" + products + "; goal=" + string(goal)
}

func memoryTurn(state model.SessionState) turn {
	mode := string(model.ModeMemory)
	if len(state.Products) == 0 {
		return turn{source: SourceMemory, body: MsgMemoryEmpty, mode: mode}
	}
	lines := []string{
		MsgMemoryHeader,
		"- Products discussed: " + strings.Join(state.Products, ", "),
		"- Last active goal: " + string(state.Goal),
		"",
		MsgMemoryFooter,
	}
	return turn{source: SourceMemory, body: strings.Join(lines, "\n"), mode: mode}
}
