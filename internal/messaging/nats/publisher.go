// internal/messaging/nats/publisher.go
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Subjects for ad lifecycle events.
const (
	SubjectAdCreated = "tradeyard.ads.created"
	SubjectAdUpdated = "tradeyard.ads.updated"
	SubjectAdDeleted = "tradeyard.ads.deleted"
	SubjectAdSold    = "tradeyard.ads.sold"
)

// Publisher emits ad lifecycle events onto NATS.
type Publisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func NewPublisher(url string, logger *zap.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("tradeyard-api"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	return &Publisher{conn: conn, logger: logger}, nil
}

// Publish marshals payload to JSON and publishes it on subject. Errors are
// logged but not fatal to the caller's request path.
func (p *Publisher) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error("event publish failed",
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	p.logger.Debug("event published", zap.String("subject", subject))
	return nil
}

func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Drain()
	}
}
