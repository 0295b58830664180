package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devevents/internal/domain"
)

type bookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) domain.BookingRepository {
	return &bookingRepository{coll: db.Collection(BookingsCollection)}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	eventID, err := objectID(b.EventID)
	if err != nil {
		return err
	}
	doc := bookingDocument{
		ID:        primitive.NewObjectID(),
		EventID:   eventID,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mapError(err)
	}
	b.ID = doc.ID.Hex()
	return nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	oid, err := objectID(eventID)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{{Key: "event_id", Value: oid}}, opts)
	if err != nil {
		return nil, err
	}
	var docs []bookingDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	bookings := make([]*domain.Booking, 0, len(docs))
	for i := range docs {
		bookings = append(bookings, docs[i].toDomain())
	}
	return bookings, nil
}
