package http

import (
	"github.com/gin-gonic/gin"

	"schedula/internal/category"
	"schedula/pkg/response"
)

// @Summary List bookable session types
// @Tags Category
// @Produce json
// @Success 200 {array} category.SessionType
// @Router /api/v1/categories [get]
func (h *handler) Types(c *gin.Context) {
	response.OK(c, category.Types())
}
