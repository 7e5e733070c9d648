package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/pkg/utils"
)

// MemoryApplicationRepository implements application record storage in
// process memory. Id generation and insertion happen under one write
// lock so no partially-created record is ever visible to List.
type MemoryApplicationRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entities.ApplicationRecord
}

// NewMemoryApplicationRepository creates an in-memory application repository
func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{items: map[uuid.UUID]*entities.ApplicationRecord{}}
}

// Create allocates an id and inserts the record atomically
func (r *MemoryApplicationRepository) Create(_ context.Context, record *entities.ApplicationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = utils.GenerateUUIDv7()
	for {
		if _, exists := r.items[record.ID]; !exists {
			break
		}
		record.ID = utils.GenerateUUIDv7()
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	copied := *record
	copied.Profile = record.Profile.Snapshot()
	r.items[record.ID] = &copied
	return nil
}

// GetByID gets an application record by id
func (r *MemoryApplicationRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.ApplicationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *item
	copied.Profile = item.Profile.Snapshot()
	return &copied, nil
}

// List returns all application records, oldest first
func (r *MemoryApplicationRepository) List(_ context.Context) ([]*entities.ApplicationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.ApplicationRecord, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		copied.Profile = item.Profile.Snapshot()
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// UpdateStatus updates a record's status
func (r *MemoryApplicationRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.Status = status
	item.UpdatedAt = time.Now()
	return nil
}
