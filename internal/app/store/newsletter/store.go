// internal/app/store/newsletter/store.go
package newsletter

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for newsletter subscribers.
const CollectionName = "newsletter_subscribers"

// DefaultSource is recorded on subscriptions that arrive through the
// public website form.
const DefaultSource = "website"

// Outcome describes what Subscribe did for a given email address.
type Outcome int

const (
	// OutcomeCreated means no record existed and a new active one was made.
	OutcomeCreated Outcome = iota
	// OutcomeReactivated means an unsubscribed record was flipped back
	// to active in place.
	OutcomeReactivated
	// OutcomeConflict means the address already has an active subscription;
	// nothing was mutated.
	OutcomeConflict
)

// Store provides access to the newsletter_subscribers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new newsletter store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// normalizeEmail lowercases and trims an address so lookups and the
// unique index agree on identity.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscribe applies the three-way subscription state machine for email:
//
//   - no record        -> create active record, OutcomeCreated
//   - active record    -> OutcomeConflict, no mutation
//   - unsubscribed     -> reactivate in place (same id, subscribed_at
//     reset, unsubscribed_at cleared), OutcomeReactivated
func (s *Store) Subscribe(ctx context.Context, email, source, ipAddress string) (*models.Subscriber, Outcome, error) {
	email = normalizeEmail(email)
	if source == "" {
		source = DefaultSource
	}
	now := time.Now().UTC()

	var existing models.Subscriber
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&existing)

	if err == mongo.ErrNoDocuments {
		sub := models.Subscriber{
			ID:               primitive.NewObjectID(),
			Email:            email,
			Status:           models.SubscriberStatusActive,
			Source:           source,
			IPAddress:        ipAddress,
			UnsubscribeToken: uuid.NewString(),
			SubscribedAt:     now,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if _, err := s.c.InsertOne(ctx, sub); err != nil {
			// A concurrent subscribe for the same address can win the
			// insert; the unique email index turns that into a conflict.
			if mongo.IsDuplicateKeyError(err) {
				return nil, OutcomeConflict, nil
			}
			return nil, 0, err
		}
		return &sub, OutcomeCreated, nil
	}
	if err != nil {
		return nil, 0, err
	}

	if existing.Status == models.SubscriberStatusActive {
		return &existing, OutcomeConflict, nil
	}

	// Reactivate the unsubscribed record in place.
	update := bson.M{
		"$set": bson.M{
			"status":        models.SubscriberStatusActive,
			"subscribed_at": now,
			"updated_at":    now,
		},
		"$unset": bson.M{"unsubscribed_at": ""},
	}
	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": existing.ID}, update); err != nil {
		return nil, 0, err
	}

	existing.Status = models.SubscriberStatusActive
	existing.SubscribedAt = now
	existing.UnsubscribedAt = nil
	existing.UpdatedAt = now
	return &existing, OutcomeReactivated, nil
}

// UnsubscribeByToken marks the subscriber holding token as unsubscribed.
// Returns mongo.ErrNoDocuments when the token is unknown. Unsubscribing
// an already-unsubscribed record is a no-op that still succeeds.
func (s *Store) UnsubscribeByToken(ctx context.Context, token string) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := s.c.FindOne(ctx, bson.M{"unsubscribe_token": token}).Decode(&sub); err != nil {
		return nil, err
	}

	if sub.Status == models.SubscriberStatusUnsubscribed {
		return &sub, nil
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"status":          models.SubscriberStatusUnsubscribed,
			"unsubscribed_at": now,
			"updated_at":      now,
		},
	}
	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": sub.ID}, update); err != nil {
		return nil, err
	}

	sub.Status = models.SubscriberStatusUnsubscribed
	sub.UnsubscribedAt = &now
	sub.UpdatedAt = now
	return &sub, nil
}

// GetByEmail retrieves a subscriber by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := s.c.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// List returns subscribers newest first, optionally filtered to one status.
func (s *Store) List(ctx context.Context, status models.SubscriberStatus) ([]models.Subscriber, error) {
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

	var subs []models.Subscriber
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.Subscriber{}
	}
	return subs, nil
}
