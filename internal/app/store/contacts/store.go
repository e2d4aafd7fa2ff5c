// internal/app/store/contacts/store.go
package contacts

import (
	"context"
	"time"

	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for contact submissions.
const CollectionName = "contacts"

// Store provides access to the contacts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new contact store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// CreateInput contains the validated fields of a contact submission.
type CreateInput struct {
	Name            string
	Email           string
	Company         string
	ServiceInterest string
	Message         string
	IPAddress       string
}

// Create persists a new contact submission with status "new".
func (s *Store) Create(ctx context.Context, input CreateInput) (*models.Contact, error) {
	now := time.Now().UTC()
	contact := models.Contact{
		ID:              primitive.NewObjectID(),
		Name:            input.Name,
		Email:           input.Email,
		Company:         input.Company,
		ServiceInterest: input.ServiceInterest,
		Message:         input.Message,
		Status:          models.ContactStatusNew,
		IPAddress:       input.IPAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := s.c.InsertOne(ctx, contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetByID retrieves a contact by its Mongo id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateStatus moves a contact to the given workflow status.
// Returns mongo.ErrNoDocuments when no contact has the given id.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ContactStatus) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List returns contacts newest first, optionally filtered to one status.
// An empty status returns every contact.
func (s *Store) List(ctx context.Context, status models.ContactStatus) ([]models.Contact, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}
