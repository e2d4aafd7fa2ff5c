package models

// Catalog entities (services, portfolio items, testimonials) are reference
// data seeded and curated out-of-band. Each carries a caller-visible
// business id (the "id" field) distinct from the Mongo _id, and an active
// flag: inactive records stay in storage but are excluded from every
// public read.

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service describes one consulting service offering.
type Service struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"     json:"-"`
	ServiceID        string             `bson:"id"                json:"id"`
	Title            string             `bson:"title"             json:"title"`
	ShortDescription string             `bson:"short_description" json:"shortDescription"`
	FullDescription  string             `bson:"full_description"  json:"fullDescription"`
	Icon             string             `bson:"icon"              json:"icon"`
	KeyBenefits      []string           `bson:"key_benefits"      json:"keyBenefits"`
	Deliverables     []string           `bson:"deliverables"      json:"deliverables"`
	Technologies     []string           `bson:"technologies"      json:"technologies"`
	PricingTier      string             `bson:"pricing_tier"      json:"pricingTier"`
	Active           bool               `bson:"active"            json:"active"`
	CreatedAt        time.Time          `bson:"created_at"        json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at"        json:"updatedAt"`
}

// PortfolioResult is a single metric/value pair from a case study.
type PortfolioResult struct {
	Metric string `bson:"metric" json:"metric"`
	Value  string `bson:"value"  json:"value"`
}

// PortfolioTestimonial is the client quote embedded in a portfolio item.
type PortfolioTestimonial struct {
	Text     string `bson:"text"     json:"text"`
	Author   string `bson:"author"   json:"author"`
	Position string `bson:"position" json:"position"`
}

// PortfolioItem is one case study shown on the portfolio page.
type PortfolioItem struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"-"`
	PortfolioID  string               `bson:"id"            json:"id"`
	Title        string               `bson:"title"         json:"title"`
	Client       string               `bson:"client"        json:"client"`
	Industry     string               `bson:"industry"      json:"industry"`
	Challenge    string               `bson:"challenge"     json:"challenge"`
	Solution     string               `bson:"solution"      json:"solution"`
	Results      []PortfolioResult    `bson:"results"       json:"results"`
	Testimonial  PortfolioTestimonial `bson:"testimonial"   json:"testimonial"`
	Images       []string             `bson:"images"        json:"images"`
	Technologies []string             `bson:"technologies"  json:"technologies"`
	Duration     string               `bson:"duration"      json:"duration"`
	TeamSize     int                  `bson:"team_size"     json:"teamSize"`
	Year         string               `bson:"year"          json:"year"`
	ServiceType  string               `bson:"service_type"  json:"serviceType"`
	Featured     bool                 `bson:"featured"      json:"featured"`
	Active       bool                 `bson:"active"        json:"active"`
	CreatedAt    time.Time            `bson:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updated_at"    json:"updatedAt"`
}

// Testimonial is a standalone client testimonial. Rating is bounded 1-5
// inclusive; the bound is also enforced by the collection's JSON schema.
type Testimonial struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TestimonialID string             `bson:"id"            json:"id"`
	ClientName    string             `bson:"client_name"   json:"clientName"`
	Position      string             `bson:"position"      json:"position"`
	Company       string             `bson:"company"       json:"company"`
	Rating        int                `bson:"rating"        json:"rating"`
	Text          string             `bson:"text"          json:"text"`
	Avatar        string             `bson:"avatar"        json:"avatar"`
	ProjectRef    string             `bson:"project_ref,omitempty" json:"projectRef,omitempty"`
	Featured      bool               `bson:"featured"      json:"featured"`
	Active        bool               `bson:"active"        json:"active"`
	CreatedAt     time.Time          `bson:"created_at"    json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at"    json:"updatedAt"`
}
