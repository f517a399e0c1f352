package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gerogew22122/BuiltBetterHomes/internal/schema"
	"github.com/gerogew22122/BuiltBetterHomes/internal/service"
)

// SettingsHandler exposes the notification settings singleton.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler with the given service.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

type settingsResponse struct {
	ResendAPIKey      string `json:"resendApiKey"`
	NotificationEmail string `json:"notificationEmail"`
}

// Get handles GET /api/settings. Unset values are returned as empty strings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("fetch settings failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch settings"})
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{
		ResendAPIKey:      settings.ResendAPIKey,
		NotificationEmail: settings.NotificationEmail,
	})
}

// Save handles POST /api/settings and returns the stored record.
func (h *SettingsHandler) Save(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to save settings"})
		return
	}
	in, err := schema.ParseSettings(payload)
	if err != nil {
		slog.Debug("settings rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to save settings"})
		return
	}

	saved, err := h.settingsService.Save(r.Context(), in)
	if err != nil {
		slog.Error("save settings failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save settings"})
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
