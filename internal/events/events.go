// Package events announces applied sample-data steps to other services.
package events

import (
	"context"
	"time"
)

// DefaultSubject is the NATS subject step events are published on.
const DefaultSubject = "sampledata.steps"

// StepEvent describes one applied step.
type StepEvent struct {
	Type          string    `json:"type"`
	Step          int       `json:"step"`
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	DurationMs    int64     `json:"duration_ms"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher sends step events.
type Publisher interface {
	PublishStep(ctx context.Context, event *StepEvent) error
	Close()
}

// Noop discards every event.
type Noop struct{}

func (Noop) PublishStep(context.Context, *StepEvent) error { return nil }
func (Noop) Close()                                        {}
