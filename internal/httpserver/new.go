package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"schedula/config"
	bookingHTTP "schedula/internal/booking/delivery/http"
	categoryHTTP "schedula/internal/category/delivery/http"
	chatHTTP "schedula/internal/chat/delivery/http"
	"schedula/internal/middleware"
	pkgLog "schedula/pkg/log"
)

// HTTPServer wires the gin engine, middleware and domain handlers.
type HTTPServer struct {
	l      pkgLog.Logger
	gin    *gin.Engine
	cfg    *config.Config
	mw     middleware.Middleware
	health *healthState

	bookingHandler  bookingHTTP.Handler
	chatHandler     chatHTTP.Handler
	categoryHandler categoryHTTP.Handler
}

// Config collects everything the server needs to run.
type Config struct {
	Logger     pkgLog.Logger
	AppConfig  *config.Config
	Middleware middleware.Middleware

	BookingHandler  bookingHTTP.Handler
	ChatHandler     chatHTTP.Handler
	CategoryHandler categoryHTTP.Handler
}

func (c Config) validate() error {
	if c.Logger == nil {
		return errors.New("httpserver: logger is required")
	}
	if c.AppConfig == nil {
		return errors.New("httpserver: app config is required")
	}
	if c.BookingHandler == nil {
		return errors.New("httpserver: booking handler is required")
	}
	if c.ChatHandler == nil {
		return errors.New("httpserver: chat handler is required")
	}
	if c.CategoryHandler == nil {
		return errors.New("httpserver: category handler is required")
	}
	return nil
}

// New creates an HTTPServer from the given configuration.
func New(cfg Config) (*HTTPServer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.AppConfig.HTTPServer.Mode)

	return &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		cfg:             cfg.AppConfig,
		mw:              cfg.Middleware,
		health:          newHealthState(),
		bookingHandler:  cfg.BookingHandler,
		chatHandler:     cfg.ChatHandler,
		categoryHandler: cfg.CategoryHandler,
	}, nil
}
