package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/infrastructure/models"
	"cleanfee.backend/pkg/utils"
)

// BookingRepository implements booking data operations over GORM
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	booking.ID = utils.GenerateUUIDv7()
	booking.Status = entities.BookingStatusPending
	booking.CreatedAt = time.Now()

	m := &models.Booking{
		ID:            booking.ID,
		CleanerID:     booking.CleanerID,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		Address:       booking.Address,
		Date:          booking.Date,
		TimeSlot:      booking.TimeSlot,
		Notes:         booking.Notes.String,
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.CreatedAt,
	}

	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a booking by id
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns all bookings, oldest first
func (r *BookingRepository) List(ctx context.Context) ([]*entities.Booking, error) {
	var ms []models.Booking
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Booking, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, nil
}

// UpdateStatus updates a booking's status
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) toEntity(m *models.Booking) *entities.Booking {
	b := &entities.Booking{
		ID:            m.ID,
		CleanerID:     m.CleanerID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Address:       m.Address,
		Date:          m.Date,
		TimeSlot:      m.TimeSlot,
		Status:        entities.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
	if m.Notes != "" {
		b.Notes = null.StringFrom(m.Notes)
	}
	return b
}
