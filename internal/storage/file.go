package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type fileEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// File is a Store persisted to a single JSON file, the desktop analog of
// browser local storage. The whole map is rewritten on every mutation; the
// session layer only holds two small keys, so that is cheap.
type File struct {
	mu      sync.Mutex
	path    string
	entries map[string]fileEntry
	closed  bool
}

func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	f := &File{path: path, entries: make(map[string]fileEntry)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading storage file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &f.entries); err != nil {
			return nil, fmt.Errorf("decoding storage file: %w", err)
		}
	}
	return f, nil
}

func (f *File) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return ErrInvalidKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	entry := fileEntry{Data: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	f.entries[key] = entry
	return f.flush()
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrClosed
	}

	entry, ok := f.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		delete(f.entries, key)
		if err := f.flush(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return append([]byte(nil), entry.Data...), nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if _, ok := f.entries[key]; !ok {
		return nil
	}
	delete(f.entries, key)
	return f.flush()
}

func (f *File) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	f.entries = make(map[string]fileEntry)
	return f.flush()
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.entries = nil
	return nil
}

// flush writes the whole map through a temp file and rename so a crash never
// leaves a half-written session behind. Caller holds the lock.
func (f *File) flush() error {
	raw, err := json.Marshal(f.entries)
	if err != nil {
		return fmt.Errorf("encoding storage file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing storage file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing storage file: %w", err)
	}
	return nil
}
