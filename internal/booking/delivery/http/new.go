package http

import (
	"github.com/gin-gonic/gin"

	"schedula/internal/booking"
	pkgLog "schedula/pkg/log"
)

// Handler is the public interface for the booking HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc booking.UseCase
}

// New creates a new HTTP handler for the booking domain.
func New(l pkgLog.Logger, uc booking.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
