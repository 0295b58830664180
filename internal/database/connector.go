// Package database holds the process-wide lazily established store connection.
package database

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultDialTimeout bounds a single dial.
const DefaultDialTimeout = 10 * time.Second

// DialFunc opens a new connection handle.
type DialFunc[T any] func(ctx context.Context) (T, error)

// Connector establishes one handle on first use and returns it for the life of the process.
//
// Concurrent callers that arrive before the handle exists share a single in-flight dial.
// A failed dial is forgotten, so the next Get dials again. A resolved handle is never
// invalidated. The dial keeps the values of the caller that started it but not its
// cancellation, and is bounded by DefaultDialTimeout instead. A caller whose context
// ends while waiting returns its context error without affecting the dial.
type Connector[T any] struct {
	dial    DialFunc[T]
	timeout time.Duration
	group   singleflight.Group

	mu    sync.RWMutex
	conn  T
	ready bool
}

// NewConnector returns a Connector that uses dial to open the handle.
func NewConnector[T any](dial DialFunc[T]) *Connector[T] {
	return &Connector[T]{dial: dial, timeout: DefaultDialTimeout}
}

func (c *Connector[T]) cached() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn, c.ready
}

// Get returns the handle, dialing it if necessary.
func (c *Connector[T]) Get(ctx context.Context) (T, error) {
	if conn, ok := c.cached(); ok {
		return conn, nil
	}
	ch := c.group.DoChan("conn", func() (any, error) {
		// A previous flight may have finished between cached() and DoChan.
		if conn, ok := c.cached(); ok {
			return conn, nil
		}
		dialCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		conn, err := c.dial(dialCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.conn, c.ready = conn, true
		c.mu.Unlock()
		return conn, nil
	})
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Close closes the resolved handle if there is one and it has a Close method.
func (c *Connector[T]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return nil
	}
	c.ready = false
	if closer, ok := any(c.conn).(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
