package usecase

import (
	"context"
	"fmt"
	"strings"

	"nutrition-assistant/internal/assistant"
	"nutrition-assistant/internal/intent"
	"nutrition-assistant/internal/model"
)

// turn is the reply of one branch before tagging.
type turn struct {
	source string
	body   string
	mode   string
}

// Answer produces the reply for one user turn.
func (uc *implUseCase) Answer(ctx context.Context, input assistant.AnswerInput) assistant.AnswerOutput {
	t := uc.answer(ctx, input.Message, input.History, true)
	turnsTotal.WithLabelValues(t.mode).Inc()
	return assistant.AnswerOutput{
		Reply:  fmt.Sprintf("[source: %s]\n\n%s", t.source, t.body),
		Source: t.source,
		Mode:   t.mode,
	}
}

// answer runs the pipeline. allowRetry gates the single correction re-entry.
func (uc *implUseCase) answer(ctx context.Context, text string, history []model.ChatMessage, allowRetry bool) turn {
	text = strings.TrimSpace(text)
	if text == "" {
		return turn{source: SourceUX, body: MsgEmptyInput, mode: assistant.ModeEmpty}
	}
	uc.l.Debugf(ctx, "%s: user_text=%q", LogPrefixAnswer, text)

	if _, ok := greetings[strings.ToLower(text)]; ok {
		return turn{source: SourceUX, body: MsgGreeting, mode: assistant.ModeGreeting}
	}

	in := uc.extractor.Extract(ctx, text, history)
	if intent.IsNaturalFood(in) {
		in.Mode = model.ModeGeneral
	} else if (in.Mode == model.ModeGeneral || in.Mode == model.ModeCatalog) && intent.HasCatalogCue(text) {
		in.Mode = model.ModeCatalog
	}

	if in.Mode == model.ModeCorrection {
		return uc.correction(ctx, history, allowRetry)
	}

	session := uc.buildSessionState(ctx, history)
	goal := inferGoal(text, session)
	uc.l.Debugf(ctx, "%s: extracted_mode=%s extracted_query=%q compare_items=%v goal=%q source=%s",
		LogPrefixAnswer, in.Mode, in.FoodQuery, in.CompareItems, goal, in.Source)

	switch in.Mode {
	case model.ModeMemory:
		return memoryTurn(session)
	case model.ModeGeneral:
		return uc.general(ctx, text, history, session)
	case model.ModeCompare:
		return uc.compare(ctx, text, in, history, session, goal)
	default:
		return uc.catalog(ctx, text, in.FoodQuery, history, session, goal)
	}
}

// correction re-answers the latest actionable user message once.
func (uc *implUseCase) correction(ctx context.Context, history []model.ChatMessage, allowRetry bool) turn {
	restate := turn{source: SourceCorrection, body: MsgRestate, mode: string(model.ModeCorrection)}
	if !allowRetry {
		return restate
	}

	previous := uc.latestActionableQuery(ctx, history)
	if previous == "" {
		return restate
	}
	uc.l.Debugf(ctx, "%s: correction_target=%q", LogPrefixAnswer, previous)
	return uc.answer(ctx, previous, history, false)
}

// tagWithError appends the error detail to a provenance tag.
func tagWithError(source, detail string) string {
	if detail == "" {
		return source
	}
	return fmt.Sprintf("%s (%s)", source, detail)
}
