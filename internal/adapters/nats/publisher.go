package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"distaz-service/internal/core/domain"
)

// SubjectRouteComputed carries one event per completed two-point
// computation.
const SubjectRouteComputed = "distaz.route.computed"

// Publisher implements ports.EventPublisher over core NATS. Events are
// fire-and-forget; no stream retention is configured.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher connects to NATS.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Publisher{conn: conn}, nil
}

// PublishRouteComputed publishes a RouteComputed event.
func (p *Publisher) PublishRouteComputed(ctx context.Context, event *domain.RouteComputedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.conn.Publish(SubjectRouteComputed, data)
}

// IsConnected reports broker connectivity, used by the readiness probe.
func (p *Publisher) IsConnected() bool {
	return p.conn.IsConnected()
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}
