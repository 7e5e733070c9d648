package repositories

import (
	"context"
	"errors"
	"time"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/pkg/redis"
)

// RedisWizardSessionRepository stores wizard sessions in the encrypted
// Redis session store so in-progress applications survive restarts.
type RedisWizardSessionRepository struct {
	store *redis.SessionStore
	ttl   time.Duration
}

// NewRedisWizardSessionRepository creates a Redis-backed session repository
func NewRedisWizardSessionRepository(store *redis.SessionStore, ttl time.Duration) *RedisWizardSessionRepository {
	return &RedisWizardSessionRepository{store: store, ttl: ttl}
}

// Get returns the session for the id
func (r *RedisWizardSessionRepository) Get(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	var session entities.WizardSession
	if err := r.store.Get(ctx, "wizard:"+sessionID, &session); err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Save upserts the session
func (r *RedisWizardSessionRepository) Save(ctx context.Context, session *entities.WizardSession) error {
	session.UpdatedAt = time.Now()
	return r.store.Save(ctx, "wizard:"+session.ID, session, r.ttl)
}

// Delete removes the session
func (r *RedisWizardSessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, "wizard:"+sessionID)
}
