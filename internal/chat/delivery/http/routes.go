package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the chat endpoint; callers pass any route-scoped
// middleware (the API server applies its rate limiter here).
func RegisterRoutes(r *gin.RouterGroup, h Handler, middleware ...gin.HandlerFunc) {
	chat := r.Group("/chat", middleware...)
	{
		chat.POST("", h.Chat)
	}
}
