package usecases

import (
	"context"
	"time"

	"cleanfee.backend/internal/domain/entities"
	"cleanfee.backend/internal/domain/repositories"
)

// CleanerUsecase handles cleaner listing logic
type CleanerUsecase struct {
	cleanerRepo repositories.CleanerRepository
}

// NewCleanerUsecase creates a new cleaner usecase
func NewCleanerUsecase(cleanerRepo repositories.CleanerRepository) *CleanerUsecase {
	return &CleanerUsecase{cleanerRepo: cleanerRepo}
}

// ListCleaners returns cleaners matching the filter
func (u *CleanerUsecase) ListCleaners(ctx context.Context, filter entities.CleanerFilter) ([]*entities.Cleaner, error) {
	return u.cleanerRepo.List(ctx, filter)
}

// GetCleaner gets a cleaner by id
func (u *CleanerUsecase) GetCleaner(ctx context.Context, id int) (*entities.Cleaner, error) {
	return u.cleanerRepo.GetByID(ctx, id)
}

// GetReviews returns the reviews for a cleaner
func (u *CleanerUsecase) GetReviews(ctx context.Context, cleanerID int) ([]*entities.Review, error) {
	return u.cleanerRepo.ListReviews(ctx, cleanerID)
}

// GetAvailability returns the time slots for a cleaner on a date.
// The schedule is a demo stub, not authoritative.
func (u *CleanerUsecase) GetAvailability(ctx context.Context, cleanerID int, date time.Time) ([]string, error) {
	return u.cleanerRepo.ListAvailability(ctx, cleanerID, date)
}
