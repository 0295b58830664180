// Package mongostore implements the event and booking repositories on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"devevents/internal/domain"
)

// Collection names.
const (
	EventsCollection   = "events"
	BookingsCollection = "bookings"

	defaultDatabase = "devevents"
)

// Open connects to the deployment at uri and verifies connectivity. The database is taken
// from the URI path, falling back to "devevents".
func Open(ctx context.Context, uri string) (*mongo.Client, *mongo.Database, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, nil, fmt.Errorf("parse mongodb uri: %w", err)
	}
	name := cs.Database
	if name == "" {
		name = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, client.Database(name), nil
}

// EnsureIndexes creates the unique slug index and the booking indexes. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(EventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create events slug index: %w", err)
	}
	_, err = db.Collection(BookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create bookings indexes: %w", err)
	}
	return nil
}

// OpenStore ensures the indexes of db and wraps it in a domain.Store. The unique
// indexes enforce slug and (event_id, email) uniqueness, so the store is never
// returned without them.
func OpenStore(ctx context.Context, client *mongo.Client, db *mongo.Database) (*domain.Store, error) {
	if err := EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return NewStore(client, db), nil
}

// NewStore wraps db in a domain.Store. Closing the store disconnects client.
func NewStore(client *mongo.Client, db *mongo.Database) *domain.Store {
	ping := func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
	closeFn := func() error { return client.Disconnect(context.Background()) }
	return domain.NewStore(NewEventRepository(db), NewBookingRepository(db), ping, closeFn)
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	return err
}
