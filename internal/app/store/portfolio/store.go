// internal/app/store/portfolio/store.go
package portfolio

import (
	"context"

	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for portfolio projects.
const CollectionName = "portfolio_items"

// Store provides read access to the portfolio catalog.
type Store struct {
	c *mongo.Collection
}

// New creates a new portfolio store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// ListFilter narrows the portfolio listing. Zero-value fields are
// ignored. Every query is additionally constrained to active items;
// callers cannot opt out of that.
type ListFilter struct {
	Industry    string
	Year        string
	ServiceType string
	Featured    *bool
}

// List returns active portfolio items matching the filter, newest
// project year first, ties broken by creation time.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]models.PortfolioItem, error) {
	query := bson.M{"active": true}
	if filter.Industry != "" {
		query["industry"] = filter.Industry
	}
	if filter.Year != "" {
		query["year"] = filter.Year
	}
	if filter.ServiceType != "" {
		query["service_type"] = filter.ServiceType
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.PortfolioItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.PortfolioItem{}
	}
	return items, nil
}

// GetByPortfolioID looks up an active portfolio item by its business id.
func (s *Store) GetByPortfolioID(ctx context.Context, portfolioID string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := s.c.FindOne(ctx, bson.M{"id": portfolioID, "active": true}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert adds a portfolio item. Used by seeding and tests only.
func (s *Store) Insert(ctx context.Context, item models.PortfolioItem) error {
	_, err := s.c.InsertOne(ctx, item)
	return err
}

// Count returns the number of documents in the collection, active or not.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
