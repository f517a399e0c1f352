package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerogew22122/BuiltBetterHomes/internal/config"
	"github.com/gerogew22122/BuiltBetterHomes/internal/handler"
	"github.com/gerogew22122/BuiltBetterHomes/internal/logging"
	"github.com/gerogew22122/BuiltBetterHomes/internal/model"
	"github.com/gerogew22122/BuiltBetterHomes/internal/notify"
	"github.com/gerogew22122/BuiltBetterHomes/internal/repository"
	"github.com/gerogew22122/BuiltBetterHomes/internal/service"
)

const (
	baseWriteTimeout = 10 * time.Second
	// writeMargin covers the storage write and response encoding around an
	// inline notification.
	writeMargin = 5 * time.Second
)

// writeTimeout returns a write deadline that outlasts an inline notification.
func writeTimeout(notifyTimeout time.Duration) time.Duration {
	return max(baseWriteTimeout, notifyTimeout+writeMargin)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	policy, err := service.ParseNotifyPolicy(cfg.NotifyPolicy)
	if err != nil {
		logging.Fatal("invalid NOTIFY_POLICY", "error", err)
	}

	store, err := repository.Open(context.Background(), cfg.DatabaseURL, model.SettingsInput{
		ResendAPIKey:      cfg.ResendAPIKey,
		NotificationEmail: cfg.NotificationEmail,
	})
	if err != nil {
		logging.Fatal("failed to open store", "error", err)
	}
	defer store.Close()

	notifier := notify.NewNotifier(cfg.NotifyFrom, notify.ResendFactory(cfg.ResendBaseURL))
	contactService := service.NewContactService(store, store, notifier, service.ContactOptions{
		Policy:  policy,
		Timeout: cfg.NotifyTimeout,
	})
	settingsService := service.NewSettingsService(store)

	h := handler.New(store, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	siteHandler := handler.NewSiteHandler(cfg.SiteDir)

	mux := routes(h, contactHandler, settingsHandler, siteHandler)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout(cfg.NotifyTimeout),
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"notify_policy", string(policy),
			"durable", cfg.DatabaseURL != "",
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	// Background notifications may still hold the store.
	contactService.Wait()
	slog.Info("server stopped")
}
