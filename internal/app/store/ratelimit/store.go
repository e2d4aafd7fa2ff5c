// internal/app/store/ratelimit/store.go
package ratelimit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection for rate limit windows.
const CollectionName = "rate_limits"

// Window tracks request counts for one scope+client pair inside a
// fixed counting window.
type Window struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Scope        string             `bson:"scope"`         // Limiter scope, e.g. "api" or "contact"
	ClientIP     string             `bson:"client_ip"`     // Caller identity for the window
	RequestCount int                `bson:"request_count"` // Requests seen in the current window
	WindowStart  time.Time          `bson:"window_start"`  // When the current window opened
	LastRequest  time.Time          `bson:"last_request"`  // Most recent request (for TTL cleanup)
}

// Result reports the outcome of a single rate limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration // Time until the window resets; only meaningful when denied
}

// Store manages fixed-window request counting for one limiter scope.
type Store struct {
	c           *mongo.Collection
	scope       string
	maxRequests int
	window      time.Duration
}

// New creates a rate limit Store for the given scope and policy.
func New(db *mongo.Database, scope string, maxRequests int, window time.Duration) *Store {
	return &Store{
		c:           db.Collection(CollectionName),
		scope:       scope,
		maxRequests: maxRequests,
		window:      window,
	}
}

// EnsureIndexes creates necessary indexes for efficient querying.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		// Unique per scope+client so concurrent requests converge on one window doc
		{
			Keys: bson.D{
				{Key: "scope", Value: 1},
				{Key: "client_ip", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("idx_ratelimit_scope_client"),
		},
		// TTL index on last_request - automatically clean up stale windows after 24 hours
		{
			Keys:    bson.D{{Key: "last_request", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(86400).SetName("idx_ratelimit_ttl"),
		},
	}
	_, err := db.Collection(CollectionName).Indexes().CreateMany(ctx, indexes)
	return err
}

// Check records one request for the given client and reports whether it
// falls within the window's budget. The count is incremented atomically
// so concurrent requests cannot slip past the limit.
//
// Errors are returned to the caller; middleware is expected to fail
// open on store errors rather than block traffic.
func (s *Store) Check(ctx context.Context, clientIP string) (Result, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-s.window)

	filter := bson.M{
		"scope":        s.scope,
		"client_ip":    clientIP,
		"window_start": bson.M{"$gt": cutoff},
	}
	update := bson.M{
		"$inc": bson.M{"request_count": 1},
		"$set": bson.M{"last_request": now},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var win Window
	err := s.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&win)
	if err == mongo.ErrNoDocuments {
		// No live window for this client; open a fresh one anchored at now.
		return s.openWindow(ctx, clientIP, now)
	}
	if err != nil {
		return Result{}, err
	}

	return s.resultFor(win, now), nil
}

// openWindow replaces any expired window for the client with a fresh
// one counting this request. A concurrent opener converges on the
// unique scope+client index; last writer's window wins, which at worst
// undercounts by one.
func (s *Store) openWindow(ctx context.Context, clientIP string, now time.Time) (Result, error) {
	win := Window{
		Scope:        s.scope,
		ClientIP:     clientIP,
		RequestCount: 1,
		WindowStart:  now,
		LastRequest:  now,
	}
	filter := bson.M{"scope": s.scope, "client_ip": clientIP}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.c.ReplaceOne(ctx, filter, win, opts); err != nil {
		return Result{}, err
	}
	return s.resultFor(win, now), nil
}

func (s *Store) resultFor(win Window, now time.Time) Result {
	remaining := s.maxRequests - win.RequestCount
	if remaining < 0 {
		remaining = 0
	}
	res := Result{
		Allowed:   win.RequestCount <= s.maxRequests,
		Remaining: remaining,
	}
	if !res.Allowed {
		res.RetryAfter = win.WindowStart.Add(s.window).Sub(now)
		if res.RetryAfter < time.Second {
			res.RetryAfter = time.Second
		}
	}
	return res
}

// Reset drops the window for a client. Used by tests.
func (s *Store) Reset(ctx context.Context, clientIP string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"scope": s.scope, "client_ip": clientIP})
	return err
}
