package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"jobdeck/internal/config"
)

// NATSSubscriber receives notifications over a NATS connection, one
// subject per user.
type NATSSubscriber struct {
	logger *zap.Logger
	nc     *nats.Conn
}

func NewNATSSubscriber(logger *zap.Logger, cfg *config.Config) (*NATSSubscriber, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.NATSConnTimeout),
		nats.Name("jobdeck"),
		nats.RetryOnFailedConnect(true),
	}
	nc, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	return &NATSSubscriber{logger: logger, nc: nc}, nil
}

func userSubject(userID string) string {
	return "notify.user." + userID
}

func (s *NATSSubscriber) Subscribe(ctx context.Context, userID string) (<-chan Event, error) {
	ch := make(chan Event, eventBuffer)

	sub, err := s.nc.Subscribe(userSubject(userID), func(msg *nats.Msg) {
		var evt Event
		if err := json.Unmarshal(msg.Data, &evt); err != nil {
			s.logger.Warn("Discarding malformed notification",
				zap.Error(err),
				zap.String("subject", msg.Subject),
			)
			return
		}
		select {
		case ch <- evt:
		default:
			s.logger.Warn("Notification dropped, consumer not keeping up",
				zap.String("subject", msg.Subject),
			)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", userSubject(userID), err)
	}

	s.logger.Info("Subscribed to notifications",
		zap.String("subject", userSubject(userID)),
	)

	go func() {
		<-ctx.Done()
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn("Failed to unsubscribe", zap.Error(err))
		}
		close(ch)
	}()

	return ch, nil
}

func (s *NATSSubscriber) Close() error {
	s.nc.Close()
	return nil
}
