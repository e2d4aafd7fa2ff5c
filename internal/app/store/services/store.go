// internal/app/store/services/store.go
package services

import (
	"context"

	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName is the MongoDB collection for service offerings.
const CollectionName = "services"

// Store provides read access to the services catalog. The catalog is
// seeded and curated out-of-band; there is no public write path.
type Store struct {
	c *mongo.Collection
}

// New creates a new services store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// ListActive returns all active services in store order.
func (s *Store) ListActive(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.c.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}

// GetByServiceID looks up an active service by its business id.
// Inactive services are treated as missing.
func (s *Store) GetByServiceID(ctx context.Context, serviceID string) (*models.Service, error) {
	var svc models.Service
	if err := s.c.FindOne(ctx, bson.M{"id": serviceID, "active": true}).Decode(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Insert adds a service. Used by seeding and tests only.
func (s *Store) Insert(ctx context.Context, svc models.Service) error {
	_, err := s.c.InsertOne(ctx, svc)
	return err
}

// Count returns the number of documents in the collection, active or not.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
