package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	contactstore "github.com/optimalsolutions/siteapi/internal/app/store/contacts"
	"github.com/optimalsolutions/siteapi/internal/app/system/mailer"
	"github.com/optimalsolutions/siteapi/internal/app/system/notify"
	"github.com/optimalsolutions/siteapi/internal/domain/models"
	"github.com/optimalsolutions/siteapi/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Email
}

func (s *recordingSender) Send(email mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func validBody() map[string]string {
	return map[string]string{
		"name":            "Jordan Reyes",
		"email":           "jordan@example.com",
		"company":         "Example Corp",
		"serviceInterest": "web-development",
		"message":         "We need help rebuilding our ordering platform.",
	}
}

func postContact(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.50:12345"
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Submit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	sender := &recordingSender{}
	notifier := notify.New(sender, "Test Site", "team@example.com", "http://localhost:3000", zap.NewNop())
	h := NewHandler(store, notifier, zap.NewNop())

	rec := postContact(t, h, validBody())

	if rec.Code != http.StatusCreated {
		t.Fatalf("Submit() status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "Contact form submitted successfully" {
		t.Errorf("message = %q, want %q", resp["message"], "Contact form submitted successfully")
	}
	if resp["id"] == "" {
		t.Error("response id should not be empty")
	}

	// Verify the submission persisted
	id, err := primitive.ObjectIDFromHex(resp["id"])
	if err != nil {
		t.Fatalf("response id is not a valid object id: %v", err)
	}
	ctx, cancel := testutil.TestContext()
	defer cancel()
	contact, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if contact.Status != models.ContactStatusNew {
		t.Errorf("contact status = %q, want %q", contact.Status, models.ContactStatusNew)
	}
	if contact.IPAddress != "192.0.2.50" {
		t.Errorf("contact ip = %q, want %q", contact.IPAddress, "192.0.2.50")
	}

	// Notification and confirmation emails go out in the background
	notifier.Wait()
	if got := sender.count(); got != 2 {
		t.Errorf("sent %d emails, want 2", got)
	}
}

func TestHandler_Submit_TrimsFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	notifier := notify.New(nil, "Test Site", "", "", zap.NewNop())
	h := NewHandler(store, notifier, zap.NewNop())

	body := validBody()
	body["name"] = "  Jordan Reyes  "
	body["email"] = " jordan@example.com "

	rec := postContact(t, h, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Submit() status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp map[string]string
	json.NewDecoder(rec.Body).Decode(&resp)
	id, _ := primitive.ObjectIDFromHex(resp["id"])

	ctx, cancel := testutil.TestContext()
	defer cancel()
	contact, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if contact.Name != "Jordan Reyes" {
		t.Errorf("contact name = %q, want %q", contact.Name, "Jordan Reyes")
	}
	if contact.Email != "jordan@example.com" {
		t.Errorf("contact email = %q, want %q", contact.Email, "jordan@example.com")
	}
}

func TestHandler_Submit_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	notifier := notify.New(nil, "Test Site", "", "", zap.NewNop())
	h := NewHandler(contactstore.New(db), notifier, zap.NewNop())

	tests := []struct {
		name      string
		mutate    func(map[string]string)
		wantField string
	}{
		{"missing name", func(b map[string]string) { delete(b, "name") }, "name"},
		{"name too short", func(b map[string]string) { b["name"] = "J" }, "name"},
		{"invalid email", func(b map[string]string) { b["email"] = "not-an-email" }, "email"},
		{"missing company", func(b map[string]string) { delete(b, "company") }, "company"},
		{"missing service interest", func(b map[string]string) { delete(b, "serviceInterest") }, "serviceInterest"},
		{"message too short", func(b map[string]string) { b["message"] = "too short" }, "message"},
		{"whitespace only message", func(b map[string]string) { b["message"] = "              " }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validBody()
			tt.mutate(body)

			rec := postContact(t, h, body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Submit() status = %d, want %d", rec.Code, http.StatusBadRequest)
			}

			var resp struct {
				Errors []struct {
					Field   string `json:"field"`
					Message string `json:"message"`
				} `json:"errors"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(resp.Errors) == 0 {
				t.Fatal("expected validation errors")
			}

			found := false
			for _, e := range resp.Errors {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error for field %q, got %+v", tt.wantField, resp.Errors)
			}
		})
	}
}

func TestHandler_Submit_ValidationPersistsNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	notifier := notify.New(nil, "Test Site", "", "", zap.NewNop())
	h := NewHandler(store, notifier, zap.NewNop())

	body := validBody()
	body["name"] = "J"
	body["message"] = "short"

	rec := postContact(t, h, body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Submit() status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	fields := make(map[string]bool)
	for _, e := range resp.Errors {
		fields[e.Field] = true
	}
	if len(fields) != 2 || !fields["name"] || !fields["message"] {
		t.Errorf("error fields = %+v, want exactly name and message", resp.Errors)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	contacts, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("contacts persisted after validation failure = %d, want 0", len(contacts))
	}
}

func TestHandler_Submit_AllErrorsReported(t *testing.T) {
	db := testutil.SetupTestDB(t)
	notifier := notify.New(nil, "Test Site", "", "", zap.NewNop())
	h := NewHandler(contactstore.New(db), notifier, zap.NewNop())

	rec := postContact(t, h, map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Submit() status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	fields := make(map[string]bool)
	for _, e := range resp.Errors {
		fields[e.Field] = true
	}
	for _, want := range []string{"name", "email", "company", "serviceInterest", "message"} {
		if !fields[want] {
			t.Errorf("expected an error for field %q, got %+v", want, resp.Errors)
		}
	}
}

func TestHandler_Submit_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	notifier := notify.New(nil, "Test Site", "", "", zap.NewNop())
	h := NewHandler(contactstore.New(db), notifier, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Submit() status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
