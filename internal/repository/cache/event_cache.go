// Package cache provides a Redis read-through cache in front of an event repository.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"devevents/internal/domain"
)

const keyPrefix = "devevents:event:"

func slugKey(slug string) string { return keyPrefix + "slug:" + slug }
func idKey(id string) string     { return keyPrefix + "id:" + id }

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// eventCache caches GetBySlug lookups. Every other call goes straight to next;
// Update drops the entries for both the old and the new slug. Cache failures are
// logged and never fail the call.
type eventCache struct {
	next   domain.EventRepository
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewEventCache(next domain.EventRepository, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) domain.EventRepository {
	return &eventCache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *eventCache) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	raw, err := c.rdb.Get(ctx, slugKey(slug)).Result()
	switch {
	case err == nil:
		var e domain.Event
		if jerr := json.Unmarshal([]byte(raw), &e); jerr == nil {
			return &e, nil
		}
		c.logger.WarnContext(ctx, "discarding unreadable cache entry", "slug", slug)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "event cache read failed", "slug", slug, "error", err)
	}

	e, err := c.next.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.store(ctx, e)
	return e, nil
}

func (c *eventCache) store(ctx context.Context, e *domain.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		c.logger.WarnContext(ctx, "event cache encode failed", "slug", e.Slug, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, slugKey(e.Slug), string(data), c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "event cache write failed", "slug", e.Slug, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, idKey(e.ID), e.Slug, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "event cache write failed", "id", e.ID, "error", err)
	}
}

func (c *eventCache) Update(ctx context.Context, e *domain.Event) error {
	if err := c.next.Update(ctx, e); err != nil {
		return err
	}
	keys := []string{slugKey(e.Slug), idKey(e.ID)}
	old, err := c.rdb.Get(ctx, idKey(e.ID)).Result()
	switch {
	case err == nil && old != e.Slug:
		keys = append(keys, slugKey(old))
	case err != nil && !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "event cache read failed", "id", e.ID, "error", err)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.WarnContext(ctx, "event cache invalidation failed", "slug", e.Slug, "error", err)
	}
	return nil
}

func (c *eventCache) Create(ctx context.Context, e *domain.Event) error {
	return c.next.Create(ctx, e)
}

func (c *eventCache) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return c.next.SlugExists(ctx, slug, excludeID)
}

func (c *eventCache) List(ctx context.Context) ([]*domain.Event, error) {
	return c.next.List(ctx)
}

func (c *eventCache) ListByAnyTag(ctx context.Context, excludeID string, tags []string) ([]*domain.Event, error) {
	return c.next.ListByAnyTag(ctx, excludeID, tags)
}
