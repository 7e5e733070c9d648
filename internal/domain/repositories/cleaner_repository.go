package repositories

import (
	"context"
	"time"

	"cleanfee.backend/internal/domain/entities"
)

// CleanerRepository defines read-only cleaner listing operations
type CleanerRepository interface {
	List(ctx context.Context, filter entities.CleanerFilter) ([]*entities.Cleaner, error)
	GetByID(ctx context.Context, id int) (*entities.Cleaner, error)
	ListReviews(ctx context.Context, cleanerID int) ([]*entities.Review, error)
	ListAvailability(ctx context.Context, cleanerID int, date time.Time) ([]string, error)
}
