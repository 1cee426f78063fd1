package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	s.mapHandlers()
	s.SetReady(true)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.HTTPServer.Port),
		Handler: s.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		s.l.Infof(ctx, "httpserver: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.SetReady(false)
	s.l.Info(ctx, "httpserver: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
