package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devevents/internal/domain"
)

type eventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{coll: db.Collection(EventsCollection)}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	doc, err := toEventDocument(e)
	if err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mapError(err)
	}
	e.ID = doc.ID.Hex()
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	doc, err := toEventDocument(e)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc)
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var doc eventDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "slug", Value: slug}}).Decode(&doc); err != nil {
		return nil, mapError(err)
	}
	return doc.toDomain(), nil
}

func (r *eventRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	filter, err := slugFilter(slug, excludeID)
	if err != nil {
		return false, err
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.D{}, opts)
}

func (r *eventRepository) ListByAnyTag(ctx context.Context, excludeID string, tags []string) ([]*domain.Event, error) {
	if len(tags) == 0 {
		return []*domain.Event{}, nil
	}
	oid, err := objectID(excludeID)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, relatedFilter(oid, tags), opts)
}

func (r *eventRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]*domain.Event, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []eventDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(docs))
	for i := range docs {
		events = append(events, docs[i].toDomain())
	}
	return events, nil
}
