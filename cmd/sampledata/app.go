package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/johnwards/sampledata/internal/config"
	"github.com/johnwards/sampledata/internal/database"
	"github.com/johnwards/sampledata/internal/events"
	"github.com/johnwards/sampledata/internal/metrics"
	"github.com/johnwards/sampledata/internal/runner"
	"github.com/johnwards/sampledata/internal/sampledata"
	"github.com/johnwards/sampledata/internal/seed"
	"github.com/johnwards/sampledata/internal/store"
)

// app is the wired application shared by every command.
type app struct {
	db        *sql.DB
	store     *store.Store
	runner    *runner.Runner
	publisher events.Publisher
	metrics   *prometheus.Registry
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := seed.Seed(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed data: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewPrometheusRecorder(reg)

	var publisher events.Publisher = events.Noop{}
	if cfg.NATSURL != "" {
		p, err := events.NewNATSPublisher(cfg.NATSURL, events.DefaultSubject)
		if err != nil {
			slog.Warn("Step events disabled", "url", cfg.NATSURL, "error", err)
		} else {
			publisher = p
		}
	}

	s := store.New(db)
	user, err := s.Users.Get(ctx, cfg.UserID)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("acting user %d: %w", cfg.UserID, err)
	}
	slog.Debug("Acting user resolved", "user_id", user.ID, "username", user.Username)

	plugin := sampledata.New(runner.NewHost(s), settings, sampledata.WithRecorder(recorder))
	r := runner.New(sampledata.NewRegistry(plugin),
		runner.WithStepLog(s.Steps),
		runner.WithPublisher(publisher),
		runner.WithRecorder(recorder),
		runner.WithUserID(cfg.UserID),
	)

	return &app{db: db, store: s, runner: r, publisher: publisher, metrics: reg}, nil
}

func (a *app) Close() {
	a.publisher.Close()
	_ = a.db.Close()
}
