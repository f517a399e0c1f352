package main

import (
	"net/http"

	"github.com/gerogew22122/BuiltBetterHomes/internal/handler"
)

func routes(h *handler.Handler, contact *handler.ContactHandler, settings *handler.SettingsHandler, site *handler.SiteHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contact.Submit)
	mux.HandleFunc("GET /api/settings", settings.Get)
	mux.HandleFunc("POST /api/settings", settings.Save)
	mux.HandleFunc("/api/", h.NotFound)

	// Everything else is the static site.
	mux.Handle("/", site)
	return mux
}
