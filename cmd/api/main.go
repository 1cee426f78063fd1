package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"schedula/config"
	_ "schedula/docs"
	bookingHTTP "schedula/internal/booking/delivery/http"
	"schedula/internal/booking/repository"
	"schedula/internal/booking/repository/inmem"
	"schedula/internal/booking/repository/postgre"
	bookingUC "schedula/internal/booking/usecase"
	categoryHTTP "schedula/internal/category/delivery/http"
	chatHTTP "schedula/internal/chat/delivery/http"
	"schedula/internal/chat/session"
	chatUC "schedula/internal/chat/usecase"
	"schedula/internal/httpserver"
	"schedula/internal/middleware"
	"schedula/internal/model"
	pkgLog "schedula/pkg/log"
	"schedula/pkg/timeparse"
)

// @title Schedula API
// @description Deterministic natural-language scheduling assistant
// @version 1.0
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "schedula: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Production locks down the debug surfaces regardless of the knobs.
	if model.Environment(cfg.Environment.Name) == model.EnvironmentProduction {
		cfg.HTTPServer.Mode = "release"
		cfg.Logger.Mode = "production"
	}

	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, cleanup, err := buildRepository(ctx, l, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	bookingUseCase := bookingUC.New(l, repo)

	sessions, err := session.NewStore(cfg.Chat.SessionCacheSize)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	chatUseCase := chatUC.New(
		l,
		chatUC.Config{
			ReferenceDate:   cfg.Scheduler.ReferenceDateTime(),
			DefaultClock:    timeparse.Clock{Hour: cfg.Scheduler.DefaultHour},
			DefaultDuration: time.Duration(cfg.Scheduler.DefaultDurationHours) * time.Hour,
			QueryWindowDays: cfg.Scheduler.QueryWindowDays,
			StrictUpdate:    cfg.Scheduler.UpdatePolicy == config.UpdatePolicyStrict,
		},
		timeparse.NewParser(),
		bookingUseCase,
		repo,
		sessions,
	)

	srv, err := httpserver.New(httpserver.Config{
		Logger:          l,
		AppConfig:       cfg,
		Middleware:      middleware.New(l, cfg),
		BookingHandler:  bookingHTTP.New(l, bookingUseCase),
		ChatHandler:     chatHTTP.New(l, chatUseCase),
		CategoryHandler: categoryHTTP.New(l),
	})
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}

// buildRepository picks the backend: Postgres when a DSN is configured,
// the in-memory store otherwise.
func buildRepository(ctx context.Context, l pkgLog.Logger, cfg *config.Config) (repository.Repository, func(), error) {
	if cfg.Postgres.DSN == "" {
		l.Info(ctx, "main: no postgres dsn configured, using in-memory store")
		return inmem.New(l), func() {}, nil
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Postgres.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	l.Info(ctx, "main: connected to postgres")

	return postgre.New(db, l), func() { _ = db.Close() }, nil
}
