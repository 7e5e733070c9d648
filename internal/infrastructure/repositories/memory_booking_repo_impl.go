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

// MemoryBookingRepository implements booking storage in process memory.
// Id generation and insertion happen under one write lock.
type MemoryBookingRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entities.Booking
}

// NewMemoryBookingRepository creates an in-memory booking repository
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{items: map[uuid.UUID]*entities.Booking{}}
}

// Create allocates an id and inserts the booking atomically
func (r *MemoryBookingRepository) Create(_ context.Context, booking *entities.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = utils.GenerateUUIDv7()
	for {
		if _, exists := r.items[booking.ID]; !exists {
			break
		}
		booking.ID = utils.GenerateUUIDv7()
	}
	booking.Status = entities.BookingStatusPending
	booking.CreatedAt = time.Now()

	copied := *booking
	r.items[booking.ID] = &copied
	return nil
}

// GetByID gets a booking by id
func (r *MemoryBookingRepository) GetByID(_ context.Context, id uuid.UUID) (*entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

// List returns all bookings, oldest first
func (r *MemoryBookingRepository) List(_ context.Context) ([]*entities.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Booking, 0, len(r.items))
	for _, item := range r.items {
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// UpdateStatus updates a booking's status
func (r *MemoryBookingRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entities.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.Status = status
	return nil
}
