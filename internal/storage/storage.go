// Package storage is the durable client-side key/value store: the session
// keys survive process restarts, and the gateway uses the same store for
// short-lived response caching.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobdeck/internal/config"
)

var (
	ErrNotFound   = errors.New("key not found in storage")
	ErrClosed     = errors.New("storage is closed")
	ErrInvalidKey = errors.New("invalid storage key")
)

// The two durable session keys. The user record is stored as JSON; the token
// is the raw bearer string, never embedded in the user record.
const (
	KeySessionUser  = "session:user"
	KeySessionToken = "session:token"
)

// Store is the durable storage contract. A ttl of zero means the entry never
// expires.
type Store interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Get(ctx context.Context, key string) ([]byte, error)

	Delete(ctx context.Context, key string) error

	Clear(ctx context.Context) error

	Close() error
}

// New builds the store selected by cfg.StorageBackend.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return NewMemory(), nil
	case config.StorageFile:
		return NewFile(cfg.StoragePath)
	case config.StorageRedis:
		return NewRedis(cfg), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
