// Package newsletter handles newsletter subscription management.
//
// Endpoints:
//   - POST /api/newsletter - Subscribe (or resubscribe) an email
//   - POST /api/newsletter/unsubscribe - Unsubscribe by token
//   - GET /api/newsletter/unsubscribe - Unsubscribe via emailed link
//
// Subscription state per email moves between active and unsubscribed;
// subscribing an already-active email is a conflict, subscribing an
// unsubscribed one reactivates the existing record.
package newsletter

import (
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	newsletterstore "github.com/optimalsolutions/siteapi/internal/app/store/newsletter"
	"github.com/optimalsolutions/siteapi/internal/app/system/inputval"
	"github.com/optimalsolutions/siteapi/internal/app/system/jsonutil"
	"github.com/optimalsolutions/siteapi/internal/app/system/network"
	"github.com/optimalsolutions/siteapi/internal/app/system/notify"
)

// Handler handles newsletter requests.
type Handler struct {
	store    *newsletterstore.Store
	notifier *notify.Dispatcher
	logger   *zap.Logger
}

// NewHandler creates a new newsletter Handler.
func NewHandler(store *newsletterstore.Store, notifier *notify.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// SubscribeInput is the subscribe request body. Source is optional and
// defaults to "website".
type SubscribeInput struct {
	Email  string `json:"email" validate:"required,email" label:"Email"`
	Source string `json:"source"`
}

// Subscribe handles POST /api/newsletter.
//
// Response:
//   - 201 {"message": "Successfully subscribed to newsletter", "id": ...} for a new email
//   - 200 {"message": "Successfully resubscribed to newsletter", "id": ...} for a reactivation
//   - 400 {"error": "Email is already subscribed"} when already active
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in SubscribeInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	in.Email = strings.TrimSpace(in.Email)

	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.ValidationError(w, result.FieldErrors())
		return
	}

	source := strings.TrimSpace(in.Source)
	if source == "" {
		source = newsletterstore.DefaultSource
	}

	sub, outcome, err := h.store.Subscribe(r.Context(), in.Email, source, network.GetClientIP(r))
	if err != nil {
		h.logger.Error("failed to subscribe", zap.Error(err))
		jsonutil.InternalError(w, "Failed to subscribe to newsletter")
		return
	}

	switch outcome {
	case newsletterstore.OutcomeCreated:
		h.logger.Info("newsletter subscription created", zap.String("id", sub.ID.Hex()))
		h.notifier.NewsletterSubscribed(sub)
		jsonutil.Created(w, map[string]string{
			"message": "Successfully subscribed to newsletter",
			"id":      sub.ID.Hex(),
		})
	case newsletterstore.OutcomeReactivated:
		h.logger.Info("newsletter subscription reactivated", zap.String("id", sub.ID.Hex()))
		h.notifier.NewsletterSubscribed(sub)
		jsonutil.OK(w, map[string]string{
			"message": "Successfully resubscribed to newsletter",
			"id":      sub.ID.Hex(),
		})
	case newsletterstore.OutcomeConflict:
		jsonutil.BadRequest(w, "Email is already subscribed")
	default:
		h.logger.Error("unexpected subscribe outcome", zap.Int("outcome", int(outcome)))
		jsonutil.InternalError(w, "Failed to subscribe to newsletter")
	}
}

// UnsubscribeInput is the unsubscribe request body.
type UnsubscribeInput struct {
	Token string `json:"token" validate:"required" label:"Token"`
}

// Unsubscribe handles POST /api/newsletter/unsubscribe. Unsubscribing
// an already-unsubscribed email succeeds; an unknown token is a 404.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var in UnsubscribeInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	in.Token = strings.TrimSpace(in.Token)

	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.ValidationError(w, result.FieldErrors())
		return
	}

	h.unsubscribeByToken(w, r, in.Token)
}

// UnsubscribeLink handles GET /api/newsletter/unsubscribe?token=...,
// the form the unsubscribe link in the welcome email takes.
func (h *Handler) UnsubscribeLink(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		jsonutil.BadRequest(w, "Missing unsubscribe token")
		return
	}

	h.unsubscribeByToken(w, r, token)
}

func (h *Handler) unsubscribeByToken(w http.ResponseWriter, r *http.Request, token string) {
	sub, err := h.store.UnsubscribeByToken(r.Context(), token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		jsonutil.NotFound(w, "Invalid unsubscribe token")
		return
	}
	if err != nil {
		h.logger.Error("failed to unsubscribe", zap.Error(err))
		jsonutil.InternalError(w, "Failed to unsubscribe from newsletter")
		return
	}

	h.logger.Info("newsletter unsubscribed", zap.String("id", sub.ID.Hex()))
	jsonutil.OK(w, map[string]string{
		"message": "Successfully unsubscribed from newsletter",
	})
}
