package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriberStatus is the subscription state of a newsletter address.
type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
)

// Subscriber is a newsletter signup. The email is stored lowercased and
// trimmed, and uniqueness is enforced by a unique index on it. An address
// that unsubscribes keeps its record; re-subscribing reactivates it in
// place instead of creating a duplicate.
type Subscriber struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"     json:"id"`
	Email            string             `bson:"email"             json:"email"`
	Status           SubscriberStatus   `bson:"status"            json:"status"`
	Source           string             `bson:"source"            json:"source"`
	IPAddress        string             `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
	UnsubscribeToken string             `bson:"unsubscribe_token" json:"-"`
	SubscribedAt     time.Time          `bson:"subscribed_at"     json:"subscribedAt"`
	UnsubscribedAt   *time.Time         `bson:"unsubscribed_at,omitempty" json:"unsubscribedAt,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"        json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at"        json:"updatedAt"`
}
