package state

import (
	"sync"

	"jobdeck/internal/models"
)

// ProfileStore holds the current user's role profile. It has no knowledge of
// role; callers pick the employer or job-seeker shape.
type ProfileStore struct {
	mu      sync.RWMutex
	profile *models.Profile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// SetProfile replaces the stored profile wholesale. Nil clears it. No merge
// semantics: a read always reflects exactly the last write.
func (p *ProfileStore) SetProfile(profile *models.Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if profile == nil {
		p.profile = nil
		return
	}
	copied := *profile
	p.profile = &copied
}

// Profile returns a copy of the stored profile, or nil when none is set.
func (p *ProfileStore) Profile() *models.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.profile == nil {
		return nil
	}
	copied := *p.profile
	return &copied
}

// Clear resets the store to its initial state.
func (p *ProfileStore) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = nil
}
