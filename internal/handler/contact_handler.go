package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gerogew22122/BuiltBetterHomes/internal/notify"
	"github.com/gerogew22122/BuiltBetterHomes/internal/schema"
	"github.com/gerogew22122/BuiltBetterHomes/internal/service"
)

const maxBodyBytes = 64 << 10

const (
	msgContactInvalid      = "Please fill out all fields correctly."
	msgContactFailed       = "Something went wrong. Please try again later."
	msgContactThanks       = "Thank you! We'll be in touch soon."
	msgEmailNotConfigured  = "Email service not configured. Please contact support."
	msgEmailDeliveryPrefix = "Failed to send email: "
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// All six fields are required strings; email must be valid; message max 5000 chars.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: msgContactInvalid})
		return
	}

	in, err := schema.ParseContactSubmission(payload)
	if err != nil {
		slog.Debug("contact submission rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, contactResponse{Message: msgContactInvalid})
		return
	}

	sub, err := h.contactService.Submit(r.Context(), in)
	var derr *notify.DeliveryError
	switch {
	case err == nil:
		slog.Info("contact submission stored", "id", sub.ID)
		writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: msgContactThanks})
	case errors.Is(err, service.ErrNotificationNotConfigured):
		slog.Error("notification not configured", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Message: msgEmailNotConfigured})
	case errors.As(err, &derr):
		slog.Error("notification failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Message: msgEmailDeliveryPrefix + derr.Err.Error()})
	default:
		slog.Error("contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactResponse{Message: msgContactFailed})
	}
}
