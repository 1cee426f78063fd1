package http

import (
	"github.com/gin-gonic/gin"

	pkgLog "schedula/pkg/log"
)

// Handler is the public interface for the session-type HTTP delivery layer.
type Handler interface {
	Types(c *gin.Context)
}

type handler struct {
	l pkgLog.Logger
}

// New creates a new HTTP handler for session types.
func New(l pkgLog.Logger) *handler {
	return &handler{l: l}
}
