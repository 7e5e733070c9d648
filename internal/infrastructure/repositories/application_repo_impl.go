package repositories

import (
	"context"
	"encoding/json"
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

// ApplicationRepository implements application record storage over GORM.
// The profile snapshot is serialized to JSON; a single-row insert keeps
// submission atomic.
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application record
func (r *ApplicationRepository) Create(ctx context.Context, record *entities.ApplicationRecord) error {
	record.ID = utils.GenerateUUIDv7()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	profileJSON, err := json.Marshal(record.Profile)
	if err != nil {
		return err
	}

	m := &models.Application{
		ID:        record.ID,
		Status:    string(record.Status),
		Profile:   string(profileJSON),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}

	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets an application record by id
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ApplicationRecord, error) {
	var m models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m)
}

// List returns all application records, oldest first
func (r *ApplicationRepository) List(ctx context.Context) ([]*entities.ApplicationRecord, error) {
	var ms []models.Application
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.ApplicationRecord, 0, len(ms))
	for i := range ms {
		record, err := r.toEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

// UpdateStatus updates a record's status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) toEntity(m *models.Application) (*entities.ApplicationRecord, error) {
	var profile entities.ApplicantProfile
	if err := json.Unmarshal([]byte(m.Profile), &profile); err != nil {
		return nil, err
	}
	record := &entities.ApplicationRecord{
		ID:        m.ID,
		Status:    entities.ApplicationStatus(m.Status),
		Profile:   profile,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Reason != "" {
		record.Reason = null.StringFrom(m.Reason)
	}
	return record, nil
}
