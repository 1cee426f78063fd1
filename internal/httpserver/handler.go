package httpserver

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bookingHTTP "schedula/internal/booking/delivery/http"
	categoryHTTP "schedula/internal/category/delivery/http"
	chatHTTP "schedula/internal/chat/delivery/http"
)

func (s *HTTPServer) registerMiddlewares() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(s.mw.Cors())
}

func (s *HTTPServer) mapHandlers() {
	s.registerMiddlewares()
	s.registerHealthRoutes()

	s.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.gin.Group("/api/v1")
	bookingHTTP.RegisterRoutes(api, s.bookingHandler)
	categoryHTTP.RegisterRoutes(api, s.categoryHandler)
	chatHTTP.RegisterRoutes(api, s.chatHandler, s.mw.ChatRateLimit())
}
