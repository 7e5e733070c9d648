package repositories

import (
	"context"

	"cleanfee.backend/internal/domain/entities"
)

// WizardSessionRepository stores per-session wizard state, keyed by the
// session id. Each session id owns exactly one in-progress profile and
// step pointer; sessions never observe each other.
type WizardSessionRepository interface {
	Get(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	Save(ctx context.Context, session *entities.WizardSession) error
	Delete(ctx context.Context, sessionID string) error
}
