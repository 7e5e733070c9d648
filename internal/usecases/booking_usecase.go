package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/domain/repositories"
)

// BookingUsecase handles booking business logic
type BookingUsecase struct {
	bookingRepo repositories.BookingRepository
	cleanerRepo repositories.CleanerRepository
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(
	bookingRepo repositories.BookingRepository,
	cleanerRepo repositories.CleanerRepository,
) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo: bookingRepo,
		cleanerRepo: cleanerRepo,
	}
}

// CreateBooking creates a pending booking for a known cleaner
func (u *BookingUsecase) CreateBooking(ctx context.Context, input *entities.BookingCreateInput) (*entities.Booking, error) {
	if _, err := u.cleanerRepo.GetByID(ctx, input.CleanerID); err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("cleaner not found")
		}
		return nil, err
	}

	booking := &entities.Booking{
		CleanerID:     input.CleanerID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Address:       strings.TrimSpace(input.Address),
		Date:          input.Date,
		TimeSlot:      input.TimeSlot,
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		booking.Notes = null.StringFrom(notes)
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking gets a booking by id
func (u *BookingUsecase) GetBooking(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	return u.bookingRepo.GetByID(ctx, id)
}

// ListBookings returns all bookings
func (u *BookingUsecase) ListBookings(ctx context.Context) ([]*entities.Booking, error) {
	return u.bookingRepo.List(ctx)
}

// CompleteBooking marks a pending booking completed
func (u *BookingUsecase) CompleteBooking(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != entities.BookingStatusPending {
		return nil, domainerrors.BadRequest("only pending bookings can be completed")
	}
	if err := u.bookingRepo.UpdateStatus(ctx, id, entities.BookingStatusCompleted); err != nil {
		return nil, err
	}
	booking.Status = entities.BookingStatusCompleted
	return booking, nil
}
