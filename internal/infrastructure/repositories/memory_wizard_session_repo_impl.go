package repositories

import (
	"context"
	"sync"
	"time"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
)

// MemoryWizardSessionRepository stores wizard sessions in process
// memory. Used when no Redis is configured.
type MemoryWizardSessionRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.WizardSession
}

// NewMemoryWizardSessionRepository creates an in-memory session repository
func NewMemoryWizardSessionRepository() *MemoryWizardSessionRepository {
	return &MemoryWizardSessionRepository{items: map[string]*entities.WizardSession{}}
}

// Get returns the session for the id
func (r *MemoryWizardSessionRepository) Get(_ context.Context, sessionID string) (*entities.WizardSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[sessionID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *item
	copied.Profile = item.Profile.Snapshot()
	return &copied, nil
}

// Save upserts the session
func (r *MemoryWizardSessionRepository) Save(_ context.Context, session *entities.WizardSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	copied.Profile = session.Profile.Snapshot()
	copied.UpdatedAt = time.Now()
	r.items[session.ID] = &copied
	return nil
}

// Delete removes the session
func (r *MemoryWizardSessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, sessionID)
	return nil
}
