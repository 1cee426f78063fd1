package middleware

import (
	"schedula/config"
	pkgLog "schedula/pkg/log"
)

// Middleware builds the HTTP middleware chain pieces from configuration.
type Middleware struct {
	l   pkgLog.Logger
	cfg *config.Config
}

func New(l pkgLog.Logger, cfg *config.Config) Middleware {
	return Middleware{l: l, cfg: cfg}
}
