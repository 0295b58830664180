package main

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"devevents/config"
	"devevents/internal/database"
	"devevents/internal/domain"
	"devevents/internal/repository"
	"devevents/internal/repository/cache"
	"devevents/internal/services"
)

// app holds the wiring shared by the sub-commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	stores   *database.Connector[*domain.Store]
	redis    *redis.Client
	events   domain.EventService
	bookings domain.BookingService
}

// newApp loads configuration and wires services. The database is dialed lazily on
// first use; Redis, when configured, is connected eagerly and skipped if unreachable.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(cfg)

	a := &app{cfg: cfg, logger: logger}
	a.stores = database.NewConnector(func(ctx context.Context) (*domain.Store, error) {
		store, err := repository.Open(ctx, cfg.DBUrl)
		if err != nil {
			logger.ErrorContext(ctx, "database connection failed", "err", err)
			return nil, err
		}
		logger.InfoContext(ctx, "database connected")
		return store, nil
	})

	eventRepo := repository.LazyEvents(a.stores)
	bookingRepo := repository.LazyBookings(a.stores)

	if cfg.RedisAddr != "" {
		rdb, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.WarnContext(ctx, "event cache disabled", "addr", cfg.RedisAddr, "err", err)
		} else {
			a.redis = rdb
			eventRepo = cache.NewEventCache(eventRepo, rdb, cfg.CacheTTL, logger)
			logger.InfoContext(ctx, "event cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		}
	}

	a.events = services.NewEventService(eventRepo, logger, cfg.RequestTimeout)
	a.bookings = services.NewBookingService(eventRepo, bookingRepo, cfg.RequestTimeout)
	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("close redis", "err", err)
		}
	}
	if err := a.stores.Close(); err != nil {
		a.logger.Error("close database", "err", err)
	}
}
