package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/johnwards/sampledata/internal/logfields"
)

// conn is the subset of *nats.Conn the publisher uses.
type conn interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Close()
}

// NATSPublisher publishes step events as JSON on a NATS subject.
type NATSPublisher struct {
	conn    conn
	subject string
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	if subject == "" {
		subject = DefaultSubject
	}

	nc, err := nats.Connect(url,
		nats.Name("sampledata"),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	slog.Info("NATS publisher connected", "url", url, "subject", subject)
	return &NATSPublisher{conn: nc, subject: subject}, nil
}

// PublishStep sends event and waits for the server to acknowledge the flush.
func (p *NATSPublisher) PublishStep(ctx context.Context, event *StepEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal step event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish step event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush step event: %w", err)
	}

	slog.Debug("Published step event", logfields.Type(event.Type), logfields.Step(event.Step), "subject", p.subject)
	return nil
}

// Close closes the connection.
func (p *NATSPublisher) Close() {
	p.conn.Close()
}
