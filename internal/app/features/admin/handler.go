// Package admin provides the API-key-protected management endpoints.
//
// Endpoints:
//   - GET /api/admin/contacts - List contact submissions
//   - PATCH /api/admin/contacts/{id}/status - Move a contact through the workflow
//   - GET /api/admin/subscribers - List newsletter subscribers
//
// Status transitions are the only mutation these endpoints offer;
// contact content is immutable once submitted.
package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	contactstore "github.com/optimalsolutions/siteapi/internal/app/store/contacts"
	newsletterstore "github.com/optimalsolutions/siteapi/internal/app/store/newsletter"
	"github.com/optimalsolutions/siteapi/internal/app/system/inputval"
	"github.com/optimalsolutions/siteapi/internal/app/system/jsonutil"
	"github.com/optimalsolutions/siteapi/internal/domain/models"
)

// Handler handles admin requests.
type Handler struct {
	contacts   *contactstore.Store
	newsletter *newsletterstore.Store
	logger     *zap.Logger
}

// NewHandler creates a new admin Handler.
func NewHandler(contacts *contactstore.Store, newsletter *newsletterstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		contacts:   contacts,
		newsletter: newsletter,
		logger:     logger,
	}
}

// ListContacts handles GET /api/admin/contacts. The optional status
// query parameter filters to one workflow state.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && !models.IsValidContactStatus(status) {
		jsonutil.BadRequest(w, "Invalid status filter")
		return
	}

	contacts, err := h.contacts.List(r.Context(), models.ContactStatus(status))
	if err != nil {
		h.logger.Error("failed to list contacts", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch contacts")
		return
	}
	jsonutil.OK(w, contacts)
}

// UpdateStatusInput is the contact status patch body.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,contactstatus" label:"Status"`
}

// UpdateContactStatus handles PATCH /api/admin/contacts/{id}/status.
func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.NotFound(w, "Contact not found")
		return
	}

	var in UpdateStatusInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))

	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.ValidationError(w, result.FieldErrors())
		return
	}

	err = h.contacts.UpdateStatus(r.Context(), id, models.ContactStatus(in.Status))
	if errors.Is(err, mongo.ErrNoDocuments) {
		jsonutil.NotFound(w, "Contact not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to update contact status",
			zap.String("id", id.Hex()),
			zap.Error(err),
		)
		jsonutil.InternalError(w, "Failed to update contact status")
		return
	}

	h.logger.Info("contact status updated",
		zap.String("id", id.Hex()),
		zap.String("status", in.Status),
	)
	jsonutil.OK(w, map[string]string{
		"message": "Contact status updated",
		"id":      id.Hex(),
		"status":  in.Status,
	})
}

// ListSubscribers handles GET /api/admin/subscribers. The optional
// status query parameter filters to active or unsubscribed.
func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" &&
		status != string(models.SubscriberStatusActive) &&
		status != string(models.SubscriberStatusUnsubscribed) {
		jsonutil.BadRequest(w, "Invalid status filter")
		return
	}

	subs, err := h.newsletter.List(r.Context(), models.SubscriberStatus(status))
	if err != nil {
		h.logger.Error("failed to list subscribers", zap.Error(err))
		jsonutil.InternalError(w, "Failed to fetch subscribers")
		return
	}
	jsonutil.OK(w, subs)
}
