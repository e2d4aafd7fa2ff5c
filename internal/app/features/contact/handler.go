// Package contact handles contact form submissions.
//
// Endpoints:
//   - POST /api/contact - Submit a contact form (rate limited)
//
// Submissions are persisted with status "new" and trigger email
// notifications that run detached from the request.
package contact

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	contactstore "github.com/optimalsolutions/siteapi/internal/app/store/contacts"
	"github.com/optimalsolutions/siteapi/internal/app/system/inputval"
	"github.com/optimalsolutions/siteapi/internal/app/system/jsonutil"
	"github.com/optimalsolutions/siteapi/internal/app/system/network"
	"github.com/optimalsolutions/siteapi/internal/app/system/notify"
)

// Handler handles contact form requests.
type Handler struct {
	store    *contactstore.Store
	notifier *notify.Dispatcher
	logger   *zap.Logger
}

// NewHandler creates a new contact Handler.
func NewHandler(store *contactstore.Store, notifier *notify.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// SubmitInput is the contact form request body.
type SubmitInput struct {
	Name            string `json:"name"            validate:"required,min=2"  label:"Name"`
	Email           string `json:"email"           validate:"required,email"  label:"Email"`
	Company         string `json:"company"         validate:"required"        label:"Company"`
	ServiceInterest string `json:"serviceInterest" validate:"required"        label:"Service interest"`
	Message         string `json:"message"         validate:"required,min=10" label:"Message"`
}

// trim removes surrounding whitespace from every field so validation
// and storage see the same values.
func (in *SubmitInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Company = strings.TrimSpace(in.Company)
	in.ServiceInterest = strings.TrimSpace(in.ServiceInterest)
	in.Message = strings.TrimSpace(in.Message)
}

// Submit handles POST /api/contact.
//
// Response (201 Created):
//
//	{
//	    "message": "Contact form submitted successfully",
//	    "id": "..."
//	}
//
// Validation failures return 400 with an errors array listing every
// failing field.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var in SubmitInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	in.trim()

	if result := inputval.Validate(in); result.HasErrors() {
		jsonutil.ValidationError(w, result.FieldErrors())
		return
	}

	contact, err := h.store.Create(r.Context(), contactstore.CreateInput{
		Name:            in.Name,
		Email:           in.Email,
		Company:         in.Company,
		ServiceInterest: in.ServiceInterest,
		Message:         in.Message,
		IPAddress:       network.GetClientIP(r),
	})
	if err != nil {
		h.logger.Error("failed to save contact submission",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		jsonutil.InternalError(w, "Failed to submit contact form")
		return
	}

	h.logger.Info("contact form submitted",
		zap.String("id", contact.ID.Hex()),
		zap.String("company", contact.Company),
		zap.String("service_interest", contact.ServiceInterest),
	)

	// Email delivery must not hold up or fail the request.
	h.notifier.ContactSubmitted(contact)

	jsonutil.Created(w, map[string]string{
		"message": "Contact form submitted successfully",
		"id":      contact.ID.Hex(),
	})
}
