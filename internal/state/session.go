// Package state holds the injectable application-state container. Stores are
// the single source of truth for views; each is guarded by its own mutex and
// every collection write is a wholesale, atomic replace.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"jobdeck/internal/models"
	"jobdeck/internal/storage"
)

// SessionStore holds the current identity and authentication flag and mirrors
// both into durable storage so a restart comes back signed in.
type SessionStore struct {
	mu     sync.RWMutex
	user   *models.User
	authed bool

	store  storage.Store
	logger *zap.Logger
}

// NewSessionStore hydrates the session from durable storage. A missing or
// unreadable stored user yields the unauthenticated initial state.
func NewSessionStore(logger *zap.Logger, store storage.Store) *SessionStore {
	s := &SessionStore{store: store, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := store.Get(ctx, storage.KeySessionUser)
	if errors.Is(err, storage.ErrNotFound) {
		return s
	}
	if err != nil {
		logger.Warn("failed to read persisted session", zap.Error(err))
		return s
	}

	var user models.User
	if err := user.UnmarshalBinary(raw); err != nil {
		logger.Warn("discarding corrupt persisted session", zap.Error(err))
		return s
	}

	s.user = &user
	s.authed = true
	logger.Debug("session hydrated from storage", zap.String("user_id", user.ID))
	return s
}

// SetCredentials unconditionally replaces the current user and persists both
// the serialized user and the bearer token. The caller guarantees the payload
// came out of a successful login or registration response.
func (s *SessionStore) SetCredentials(ctx context.Context, user models.User, accessToken string) error {
	raw, err := user.MarshalBinary()
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, storage.KeySessionUser, raw, 0); err != nil {
		return err
	}
	if err := s.store.Set(ctx, storage.KeySessionToken, []byte(accessToken), 0); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.authed = true
	s.mu.Unlock()

	s.logger.Info("credentials set",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return nil
}

// SetProfileFlag flips the user's profile flag and re-persists the record.
// No-op when unauthenticated.
func (s *SessionStore) SetProfileFlag(ctx context.Context, hasProfile bool) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil
	}
	updated := *s.user
	s.mu.Unlock()
	updated.HasProfile = hasProfile

	raw, err := updated.MarshalBinary()
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, storage.KeySessionUser, raw, 0); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	return nil
}

// Logout clears the identity and removes both persisted entries. Idempotent.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.authed = false
	s.mu.Unlock()

	if err := s.store.Delete(ctx, storage.KeySessionUser); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, storage.KeySessionToken); err != nil {
		return err
	}

	s.logger.Info("session cleared")
	return nil
}

// Current returns a snapshot of the session. The user record is copied so
// callers can never mutate store state in place.
func (s *SessionStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.Session{}
	}
	user := *s.user
	return models.Session{User: &user, IsAuthenticated: s.authed}
}

// TokenExpired reports whether the persisted bearer token carries an exp
// claim in the past. Opaque or missing tokens report false; the server is the
// authority either way, this only lets callers pre-empt a doomed request.
func (s *SessionStore) TokenExpired(ctx context.Context) bool {
	raw, err := s.store.Get(ctx, storage.KeySessionToken)
	if err != nil {
		return false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(string(raw), &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
