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

	"github.com/gorilla/securecookie"

	"github.com/johnwards/sampledata/internal/api"
	"github.com/johnwards/sampledata/internal/api/admin"
	"github.com/johnwards/sampledata/internal/api/content"
	"github.com/johnwards/sampledata/internal/api/steps"
	"github.com/johnwards/sampledata/internal/api/ui"
	"github.com/johnwards/sampledata/internal/config"
	"github.com/johnwards/sampledata/internal/metrics"
	"github.com/johnwards/sampledata/internal/userstate"
)

func runServe(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
		slog.Warn("SAMPLEDATA_SESSION_SECRET not set; sessions will not survive a restart")
	}

	mux := http.NewServeMux()

	steps.RegisterRoutes(mux, a.runner, userstate.NewCookieStore(secret, cfg.CookieSecure))
	content.RegisterRoutes(mux, a.store)
	admin.RegisterRoutes(mux, a.store)
	ui.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metrics.HTTPHandler(a.metrics))

	// Catch-all: return 404 in the JSON error envelope.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, r, http.StatusNotFound, fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path))
	})

	handler := api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Auth(cfg.AuthToken, ui.Prefix),
		api.JSONContentType(ui.Prefix, "/metrics"),
		api.Logging(),
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("shutting down server")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting sampledata server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}
