package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "chat http: bad body: %v", err)
		return chatReq{}, errMessageRequired
	}
	return req, nil
}
