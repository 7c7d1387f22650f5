// Package notify delivers server-pushed notifications for the signed-in
// user. Transports are interchangeable: NATS for deployments with a broker,
// a websocket client for servers that push directly, and a no-op for
// offline or test use.
package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jobdeck/internal/config"
)

// Event is a single notification pushed by the server.
type Event struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	JobID     string    `json:"job_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscriber streams notifications for one user. The returned channel is
// closed when the context is cancelled or the transport drops. Events that
// arrive while the consumer is not keeping up are discarded.
type Subscriber interface {
	Subscribe(ctx context.Context, userID string) (<-chan Event, error)
	Close() error
}

// eventBuffer is the per-subscription channel capacity. Slow consumers
// lose events past this point rather than blocking the transport.
const eventBuffer = 64

// New builds the subscriber selected by the configuration.
func New(logger *zap.Logger, cfg *config.Config) (Subscriber, error) {
	switch cfg.NotifyTransport {
	case config.NotifyNATS:
		return NewNATSSubscriber(logger, cfg)
	case config.NotifyWebsocket:
		return NewWebsocketSubscriber(logger, cfg), nil
	default:
		return NoopSubscriber{}, nil
	}
}

// NoopSubscriber satisfies Subscriber without any transport. Subscribe
// returns a channel that stays open until the context is cancelled.
type NoopSubscriber struct{}

func (NoopSubscriber) Subscribe(ctx context.Context, userID string) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (NoopSubscriber) Close() error { return nil }
