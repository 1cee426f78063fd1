package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.List)
		bookings.GET("/search", h.Search)
		bookings.GET("/:id", h.Detail)
		bookings.PUT("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)
	}
}
