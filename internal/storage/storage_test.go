package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"jobdeck/internal/storage"
)

func stores(t *testing.T) map[string]storage.Store {
	t.Helper()

	file, err := storage.NewFile(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return map[string]storage.Store{
		"memory": storage.NewMemory(),
		"file":   file,
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(ctx, storage.KeySessionToken, []byte("tok-123"), 0); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := s.Get(ctx, storage.KeySessionToken)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(got) != "tok-123" {
				t.Errorf("Get = %q, want %q", got, "tok-123")
			}
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get(missing) = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(ctx, "k", []byte("v"), 0); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Delete(ctx, "k"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := s.Delete(ctx, "k"); err != nil {
				t.Fatalf("second Delete: %v", err)
			}
			if _, err := s.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get after Delete = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
				t.Fatalf("Set: %v", err)
			}
			time.Sleep(5 * time.Millisecond)
			if _, err := s.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get after expiry = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_ = s.Set(ctx, "a", []byte("1"), 0)
			_ = s.Set(ctx, "b", []byte("2"), 0)
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if _, err := s.Get(ctx, "a"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get after Clear = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestFile_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := storage.NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := first.Set(ctx, storage.KeySessionUser, []byte(`{"_id":"u1"}`), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := storage.NewFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := second.Get(ctx, storage.KeySessionUser)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if string(got) != `{"_id":"u1"}` {
		t.Errorf("Get after reopen = %q", got)
	}
}
