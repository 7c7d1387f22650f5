package notify

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"jobdeck/internal/config"
)

// WebsocketSubscriber dials the server's push endpoint and reads
// notification frames for the joined user.
type WebsocketSubscriber struct {
	logger *zap.Logger
	wsURL  string

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWebsocketSubscriber(logger *zap.Logger, cfg *config.Config) *WebsocketSubscriber {
	return &WebsocketSubscriber{logger: logger, wsURL: cfg.NotifyWSURL}
}

type joinMessage struct {
	Event  string `json:"event"`
	UserID string `json:"user_id"`
}

func (s *WebsocketSubscriber) Subscribe(ctx context.Context, userID string) (<-chan Event, error) {
	u, err := url.Parse(s.wsURL)
	if err != nil {
		return nil, fmt.Errorf("parse websocket URL: %w", err)
	}
	q := u.Query()
	q.Set("user_id", userID)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}

	if err := conn.WriteJSON(joinMessage{Event: "join", UserID: userID}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("send join: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.logger.Info("Connected to notification stream", zap.String("url", s.wsURL))

	ch := make(chan Event, eventBuffer)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(ch)
		for {
			var evt Event
			if err := conn.ReadJSON(&evt); err != nil {
				if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					s.logger.Warn("Notification stream closed", zap.Error(err))
				}
				return
			}
			select {
			case ch <- evt:
			default:
				s.logger.Warn("Notification dropped, consumer not keeping up",
					zap.String("type", evt.Type),
				)
			}
		}
	}()

	return ch, nil
}

func (s *WebsocketSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
