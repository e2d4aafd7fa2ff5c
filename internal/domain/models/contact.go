package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatus tracks where a contact submission sits in the follow-up
// workflow. Submissions always start as "new"; the admin API advances them.
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// AllContactStatusValues returns every valid contact status.
func AllContactStatusValues() []string {
	return []string{
		string(ContactStatusNew),
		string(ContactStatusRead),
		string(ContactStatusReplied),
		string(ContactStatusArchived),
	}
}

// IsValidContactStatus reports whether s is a recognized contact status.
func IsValidContactStatus(s string) bool {
	switch ContactStatus(s) {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

// Contact is a contact-form submission. Contacts are never deleted through
// the public API; the status field is the only mutable part of the record.
type Contact struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"    json:"id"`
	Name            string             `bson:"name"             json:"name"`
	Email           string             `bson:"email"            json:"email"`
	Company         string             `bson:"company"          json:"company"`
	ServiceInterest string             `bson:"service_interest" json:"serviceInterest"`
	Message         string             `bson:"message"          json:"message"`
	Status          ContactStatus      `bson:"status"           json:"status"`
	IPAddress       string             `bson:"ip_address,omitempty" json:"ipAddress,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"       json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at"       json:"updatedAt"`
}
