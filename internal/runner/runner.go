// Package runner applies sample-data steps against the SQLite content model
// and records what happened: the step log, metrics and published events.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/johnwards/sampledata/internal/events"
	"github.com/johnwards/sampledata/internal/logfields"
	"github.com/johnwards/sampledata/internal/metrics"
	"github.com/johnwards/sampledata/internal/sampledata"
	"github.com/johnwards/sampledata/internal/store"
)

// NewHost exposes st as the content model plugins write through.
func NewHost(st *store.Store) sampledata.Host {
	return sampledata.Host{
		Categories: st.Categories,
		Articles:   st.Articles,
		Fields:     st.Fields,
		Menus:      st.Menus,
		MenuItems:  st.MenuItems,
		Components: st.Components,
	}
}

// Runner applies steps through a Registry.
type Runner struct {
	registry  *sampledata.Registry
	steps     store.StepLogStore
	publisher events.Publisher
	metrics   metrics.Recorder
	userID    int64
}

// Option customises a Runner.
type Option func(*Runner)

// WithStepLog records every applied step in steps.
func WithStepLog(steps store.StepLogStore) Option {
	return func(r *Runner) { r.steps = steps }
}

// WithPublisher announces every applied step through p.
func WithPublisher(p events.Publisher) Option {
	return func(r *Runner) { r.publisher = p }
}

// WithRecorder observes step outcomes and durations.
func WithRecorder(m metrics.Recorder) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithUserID sets the acting user for requests that carry none.
func WithUserID(id int64) Option {
	return func(r *Runner) { r.userID = id }
}

// New creates a Runner dispatching to registry.
func New(registry *sampledata.Registry, opts ...Option) *Runner {
	r := &Runner{
		registry:  registry,
		publisher: events.Noop{},
		metrics:   metrics.NoopRecorder{},
		userID:    1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Overviews lists every registered plugin.
func (r *Runner) Overviews() []sampledata.Overview {
	return r.registry.Overviews()
}

// Apply runs one step. Unknown types and out-of-range steps are returned as
// errors from sampledata; step failures come back in the Response.
func (r *Runner) Apply(ctx context.Context, req sampledata.StepRequest, state sampledata.UserState, correlationID string) (sampledata.Response, error) {
	if req.UserID == 0 {
		req.UserID = r.userID
	}

	start := time.Now()
	resp, err := r.registry.Apply(ctx, req, state)
	if err != nil {
		return resp, err
	}
	elapsed := time.Since(start)

	r.metrics.ObserveStep(req.Type, elapsed, metrics.Result(resp.Success))

	attrs := []any{
		logfields.Type(req.Type),
		logfields.Step(req.Step),
		logfields.CorrelationID(correlationID),
		"duration_ms", elapsed.Milliseconds(),
	}
	if resp.Success {
		slog.Info("Step applied", attrs...)
	} else {
		slog.Warn("Step failed", append(attrs, "message", resp.Message)...)
	}

	if r.steps != nil {
		entry := &store.StepLogEntry{
			Type:          req.Type,
			Step:          req.Step,
			Success:       resp.Success,
			Message:       resp.Message,
			DurationMs:    elapsed.Milliseconds(),
			CorrelationID: correlationID,
		}
		if err := r.steps.Record(ctx, entry); err != nil {
			slog.Error("Failed to record step", logfields.Type(req.Type), logfields.Step(req.Step), logfields.Error(err))
		}
	}

	event := &events.StepEvent{
		Type:          req.Type,
		Step:          req.Step,
		Success:       resp.Success,
		Message:       resp.Message,
		DurationMs:    elapsed.Milliseconds(),
		CorrelationID: correlationID,
	}
	if err := r.publisher.PublishStep(ctx, event); err != nil {
		slog.Warn("Failed to publish step event", logfields.Type(req.Type), logfields.Step(req.Step), logfields.Error(err))
	}

	return resp, nil
}
