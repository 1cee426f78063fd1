package httpserver

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

type healthState struct {
	ready atomic.Bool
}

func newHealthState() *healthState {
	return &healthState{}
}

// SetReady flips the readiness probe once dependencies are wired.
func (s *HTTPServer) SetReady(ready bool) {
	s.health.ready.Store(ready)
}

func (s *HTTPServer) registerHealthRoutes() {
	s.gin.GET("/health", s.healthz)
	s.gin.GET("/health/live", s.healthz)
	s.gin.GET("/health/ready", s.readyz)
}

func (s *HTTPServer) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *HTTPServer) readyz(c *gin.Context) {
	if !s.health.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
