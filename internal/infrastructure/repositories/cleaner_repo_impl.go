package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/infrastructure/seed"
)

// CleanerRepository implements read-only cleaner listing over the
// seeded in-memory roster. Listing is a linear scan; the table is tiny.
type CleanerRepository struct {
	mu       sync.RWMutex
	cleaners []*entities.Cleaner
	reviews  map[int][]*entities.Review
}

// NewCleanerRepository creates a cleaner repository seeded with sample data
func NewCleanerRepository() *CleanerRepository {
	return &CleanerRepository{
		cleaners: seed.Cleaners(),
		reviews:  seed.Reviews(),
	}
}

// List returns cleaners matching the filter, in roster order
func (r *CleanerRepository) List(_ context.Context, filter entities.CleanerFilter) ([]*entities.Cleaner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Cleaner, 0, len(r.cleaners))
	for _, c := range r.cleaners {
		if matchesFilter(c, filter) {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetByID returns a cleaner by id
func (r *CleanerRepository) GetByID(_ context.Context, id int) (*entities.Cleaner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cleaners {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

// ListReviews returns the reviews for a cleaner; unknown ids yield an
// empty list, matching the listing behaviour rather than a 404.
func (r *CleanerRepository) ListReviews(_ context.Context, cleanerID int) ([]*entities.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews, ok := r.reviews[cleanerID]
	if !ok {
		return []*entities.Review{}, nil
	}
	return reviews, nil
}

// ListAvailability returns the stubbed time slots for a cleaner on a date
func (r *CleanerRepository) ListAvailability(ctx context.Context, cleanerID int, date time.Time) ([]string, error) {
	if _, err := r.GetByID(ctx, cleanerID); err != nil {
		return nil, err
	}
	return seed.Availability(cleanerID, date), nil
}

func matchesFilter(c *entities.Cleaner, filter entities.CleanerFilter) bool {
	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		if !strings.Contains(strings.ToLower(c.Name), q) && !skillsContain(c.Skills, q) {
			return false
		}
	}
	if filter.MinRating != nil && c.Rating < *filter.MinRating {
		return false
	}
	if filter.MaxRate != nil && c.HourlyRate > *filter.MaxRate {
		return false
	}
	if filter.MinExperience != nil && c.ExperienceYears < *filter.MinExperience {
		return false
	}
	for _, want := range filter.Skills {
		if !skillsContain(c.Skills, strings.ToLower(want)) {
			return false
		}
	}
	return true
}

func skillsContain(skills []string, q string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
