package repositories

import (
	"context"

	"github.com/google/uuid"
	"cleanfee.backend/internal/domain/entities"
)

// ApplicationRepository defines application record operations.
// Create must allocate the identifier and insert atomically so that a
// record is either fully visible or not visible at all.
type ApplicationRepository interface {
	Create(ctx context.Context, record *entities.ApplicationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ApplicationRecord, error)
	List(ctx context.Context) ([]*entities.ApplicationRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
}
