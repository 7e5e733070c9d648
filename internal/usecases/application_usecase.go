package usecases

import (
	"context"

	"github.com/google/uuid"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/domain/repositories"
)

// ApplicationUsecase handles application record business logic
type ApplicationUsecase struct {
	applicationRepo repositories.ApplicationRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(applicationRepo repositories.ApplicationRepository) *ApplicationUsecase {
	return &ApplicationUsecase{applicationRepo: applicationRepo}
}

// CreateApplication creates a record directly from a full profile,
// bypassing the wizard (the CRUD surface of the API). The same
// predicates apply: an incomplete profile is rejected.
func (u *ApplicationUsecase) CreateApplication(ctx context.Context, profile entities.ApplicantProfile) (*entities.ApplicationRecord, error) {
	for step := entities.StepIntro; step <= entities.StepReview; step++ {
		if err := ValidateStep(step, &profile); err != nil {
			return nil, err
		}
	}

	record := &entities.ApplicationRecord{
		Status:  entities.ApplicationStatusSubmitted,
		Profile: profile.Snapshot(),
	}
	if err := u.applicationRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetApplication gets a record by id
func (u *ApplicationUsecase) GetApplication(ctx context.Context, id uuid.UUID) (*entities.ApplicationRecord, error) {
	return u.applicationRepo.GetByID(ctx, id)
}

// ListApplications returns all records
func (u *ApplicationUsecase) ListApplications(ctx context.Context) ([]*entities.ApplicationRecord, error) {
	return u.applicationRepo.List(ctx)
}

// SetStatus applies an externally-driven status transition. Permitted:
// submitted->pending, pending->approved, pending->rejected. Approved is
// terminal; nothing ever goes back to submitted.
func (u *ApplicationUsecase) SetStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) (*entities.ApplicationRecord, error) {
	record, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(record.Status, status) {
		return nil, domainerrors.BadRequest("status transition not permitted")
	}

	if err := u.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.applicationRepo.GetByID(ctx, id)
}

func transitionAllowed(from, to entities.ApplicationStatus) bool {
	switch from {
	case entities.ApplicationStatusSubmitted:
		return to == entities.ApplicationStatusPending
	case entities.ApplicationStatusPending:
		return to == entities.ApplicationStatusApproved || to == entities.ApplicationStatusRejected
	default:
		return false
	}
}
