package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schedula/internal/model"
	"schedula/pkg/response"
)

const sessionHeader = "X-Session-ID"

// @Summary Interpret a scheduling command
// @Description Classifies the message, executes the resolved intent against the calendar and returns a composed reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Conversation session ID; minted and returned when absent"
// @Param message body chatReq true "Chat message"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.Resp "Missing message"
// @Router /api/v1/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(sessionHeader, sessionID)

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Interpret(ctx, model.Scope{SessionID: sessionID}, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "chat http: interpret failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newChatResp(sessionID, out))
}
