package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	r.GET("/categories", h.Types)
	// legacy path kept for existing clients
	r.GET("/training-types", h.Types)
}
