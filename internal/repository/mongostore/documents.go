package mongostore

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devevents/internal/domain"
)

type eventDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	Overview    string             `bson:"overview"`
	Image       string             `bson:"image"`
	Venue       string             `bson:"venue"`
	Location    string             `bson:"location"`
	Date        string             `bson:"date"`
	Time        string             `bson:"time"`
	Mode        string             `bson:"mode"`
	Audience    string             `bson:"audience"`
	Agenda      []string           `bson:"agenda"`
	Organizer   string             `bson:"organizer"`
	Tags        []string           `bson:"tags"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type bookingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EventID   primitive.ObjectID `bson:"event_id"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// objectID parses a hex id; malformed ids are reported as domain.ErrNotFound
// because no document can carry them.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", domain.ErrNotFound, id)
	}
	return oid, nil
}

func toEventDocument(e *domain.Event) (*eventDocument, error) {
	doc := &eventDocument{
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Overview:    e.Overview,
		Image:       e.Image,
		Venue:       e.Venue,
		Location:    e.Location,
		Date:        e.Date,
		Time:        e.Time,
		Mode:        string(e.Mode),
		Audience:    e.Audience,
		Agenda:      e.Agenda,
		Organizer:   e.Organizer,
		Tags:        e.Tags,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.ID != "" {
		oid, err := objectID(e.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d *eventDocument) toDomain() *domain.Event {
	return &domain.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Slug:        d.Slug,
		Description: d.Description,
		Overview:    d.Overview,
		Image:       d.Image,
		Venue:       d.Venue,
		Location:    d.Location,
		Date:        d.Date,
		Time:        d.Time,
		Mode:        domain.Mode(d.Mode),
		Audience:    d.Audience,
		Agenda:      d.Agenda,
		Organizer:   d.Organizer,
		Tags:        d.Tags,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d *bookingDocument) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        d.ID.Hex(),
		EventID:   d.EventID.Hex(),
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// slugFilter matches documents holding slug, other than excludeID when it is set.
func slugFilter(slug, excludeID string) (bson.D, error) {
	filter := bson.D{{Key: "slug", Value: slug}}
	if excludeID == "" {
		return filter, nil
	}
	oid, err := objectID(excludeID)
	if err != nil {
		return nil, err
	}
	return append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: oid}}}), nil
}

// relatedFilter matches documents other than excludeID sharing at least one tag.
func relatedFilter(excludeID primitive.ObjectID, tags []string) bson.D {
	return bson.D{
		{Key: "_id", Value: bson.D{{Key: "$ne", Value: excludeID}}},
		{Key: "tags", Value: bson.D{{Key: "$in", Value: tags}}},
	}
}
