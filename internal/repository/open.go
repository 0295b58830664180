// Package repository selects the storage backend from the database URL.
package repository

import (
	"context"
	"fmt"
	"net/url"

	"devevents/internal/domain"
	"devevents/internal/repository/mongostore"
	"devevents/internal/repository/postgres"
)

// Backend identifies a supported storage engine.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongodb"
)

// BackendFor returns the backend addressed by databaseURL's scheme.
func BackendFor(databaseURL string) (Backend, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: parse database url: %v", domain.ErrInvalidInput, err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	default:
		return "", fmt.Errorf("%w: unsupported database scheme %q", domain.ErrInvalidInput, u.Scheme)
	}
}

// Open connects to the backend addressed by databaseURL and returns its store.
func Open(ctx context.Context, databaseURL string) (*domain.Store, error) {
	backend, err := BackendFor(databaseURL)
	if err != nil {
		return nil, err
	}
	switch backend {
	case BackendMongo:
		client, db, err := mongostore.Open(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		store, err := mongostore.OpenStore(ctx, client, db)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return store, nil
	default:
		db, err := postgres.Open(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(db), nil
	}
}

// Migrate brings the schema of the backend at databaseURL up to date: SQL migrations
// for Postgres, index creation for MongoDB.
func Migrate(ctx context.Context, databaseURL string) error {
	backend, err := BackendFor(databaseURL)
	if err != nil {
		return err
	}
	switch backend {
	case BackendMongo:
		client, db, err := mongostore.Open(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		return mongostore.EnsureIndexes(ctx, db)
	default:
		db, err := postgres.Open(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		return postgres.Migrate(db)
	}
}
