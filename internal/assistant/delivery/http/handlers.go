package http

import (
	"github.com/gin-gonic/gin"

	"nutrition-assistant/pkg/response"
)

// Chat godoc
// @Summary     Chat with the nutrition assistant
// @Description Answers one user turn. The reply starts with a "[source: ...]" provenance tag.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message and prior turns"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Chat: invalid request: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	output := h.uc.Answer(ctx, req.toInput())
	h.l.Infof(ctx, "assistant.delivery.http.Chat: mode=%s source=%q", output.Mode, output.Source)

	response.OK(c, h.newChatResp(output))
}
