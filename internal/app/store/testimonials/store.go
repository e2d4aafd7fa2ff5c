// internal/app/store/testimonials/store.go
package testimonials

import (
	"context"

	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for client testimonials.
const CollectionName = "testimonials"

// Store provides read access to testimonials.
type Store struct {
	c *mongo.Collection
}

// New creates a new testimonials store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// List returns active testimonials, newest first. When featured is
// non-nil the result is narrowed to that featured state.
func (s *Store) List(ctx context.Context, featured *bool) ([]models.Testimonial, error) {
	query := bson.M{"active": true}
	if featured != nil {
		query["featured"] = *featured
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Testimonial
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Testimonial{}
	}
	return items, nil
}

// Insert adds a testimonial. Used by seeding and tests only.
func (s *Store) Insert(ctx context.Context, t models.Testimonial) error {
	_, err := s.c.InsertOne(ctx, t)
	return err
}

// Count returns the number of documents in the collection, active or not.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
