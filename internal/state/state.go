package state

import (
	"context"

	"go.uber.org/zap"

	"jobdeck/internal/storage"
)

// App is the application-state container injected into every layer that reads
// or writes state. Tests build isolated instances over an in-memory store.
type App struct {
	Session *SessionStore
	Profile *ProfileStore
	Jobs    *JobsStore
}

func NewApp(logger *zap.Logger, store storage.Store) *App {
	return &App{
		Session: NewSessionStore(logger, store),
		Profile: NewProfileStore(),
		Jobs:    NewJobsStore(),
	}
}

// Reset returns the whole state tree to its initial, signed-out state.
// Logout goes through here so no stale profile or job data from the previous
// user ever reaches the next one on a shared device.
func (a *App) Reset(ctx context.Context) error {
	a.Profile.Clear()
	a.Jobs.Clear()
	return a.Session.Logout(ctx)
}
