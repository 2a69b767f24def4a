package usecase

import (
	"context"
	"fmt"

	"nutrition-assistant/internal/model"
	"nutrition-assistant/internal/responder"
)

func (uc *implUseCase) general(ctx context.Context, text string, history []model.ChatMessage, session model.SessionState) turn {
	mode := string(model.ModeGeneral)
	if needsGoalClarification(text) {
		return turn{source: SourceClarification, body: MsgClarifyGeneral, mode: mode}
	}
	res := uc.responder.Reply(ctx, fmt.Sprintf(PromptGeneralTemplate, sessionText(session), text), history)
	return turn{source: replySource(res), body: res.Text, mode: mode}
}

// replySource tags a plain reply: "llm" or "fallback (<detail>)".
func replySource(res responder.Result) string {
	if res.OK() {
		return string(responder.SourceLLM)
	}
	return tagWithError(string(responder.SourceFallback), res.ErrDetail())
}
