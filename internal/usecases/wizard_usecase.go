package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/domain/repositories"
	"cleanfee.backend/pkg/logger"
)

// MinimumAge is the minimum applicant age in years
const MinimumAge = 18

// now is swapped in tests that exercise the age boundary
var now = time.Now

// WizardUsecase drives the 7-step cleaner application wizard. All
// transitions are functions of the stored session plus the event; no
// state lives outside the session repository.
type WizardUsecase struct {
	sessions        repositories.WizardSessionRepository
	applicationRepo repositories.ApplicationRepository
}

// NewWizardUsecase creates a new wizard usecase
func NewWizardUsecase(
	sessions repositories.WizardSessionRepository,
	applicationRepo repositories.ApplicationRepository,
) *WizardUsecase {
	return &WizardUsecase{
		sessions:        sessions,
		applicationRepo: applicationRepo,
	}
}

// GetSession returns the wizard session for the id, creating a fresh
// one at the intro step when none exists.
func (u *WizardUsecase) GetSession(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := u.sessions.Get(ctx, sessionID)
	if err == nil {
		return session, nil
	}
	if err != domainerrors.ErrNotFound {
		return nil, err
	}

	session = entities.NewWizardSession(sessionID)
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateProfile merges field updates into the in-progress profile.
// Updates never move the step pointer; validation happens on Advance.
func (u *WizardUsecase) UpdateProfile(ctx context.Context, sessionID string, apply func(*entities.ApplicantProfile)) (*entities.WizardSession, error) {
	session, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	apply(&session.Profile)
	if session.Profile.Documents == nil {
		session.Profile.Documents = map[string]string{}
	}
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the wizard from the current step to the next one,
// provided the current step's required-field predicate holds. On
// failure the step is unchanged and the error carries the exact
// missing-field list.
func (u *WizardUsecase) Advance(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step >= entities.StepReview {
		return nil, domainerrors.BadRequest("already at the final step; submit the application")
	}

	if err := ValidateStep(session.Step, &session.Profile); err != nil {
		return nil, err
	}

	session.Step++
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves one step backwards. Always permitted, discards nothing.
func (u *WizardUsecase) Back(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step > entities.StepIntro {
		session.Step--
		if err := u.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// Submit validates the final step, creates the immutable application
// record and resets the session. The record insert allocates the id
// atomically; the session is cleared only after the insert succeeded,
// so a failed submission leaves the wizard resumable and no partial
// record visible.
func (u *WizardUsecase) Submit(ctx context.Context, sessionID string) (*entities.ApplicationRecord, error) {
	session, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != entities.StepReview {
		return nil, domainerrors.BadRequest("application is not at the review step")
	}

	// Every predicate must hold at submission time, not just review's.
	for step := entities.StepIntro; step <= entities.StepReview; step++ {
		if err := ValidateStep(step, &session.Profile); err != nil {
			return nil, err
		}
	}

	record := &entities.ApplicationRecord{
		Status:  entities.ApplicationStatusSubmitted,
		Profile: session.Profile.Snapshot(),
	}
	if err := u.applicationRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	fresh := entities.NewWizardSession(sessionID)
	if err := u.sessions.Save(ctx, fresh); err != nil {
		// The record exists; a stale session is recoverable via restart.
		logger.Warn(ctx, "failed to reset wizard session after submission",
			zap.String("session_id", sessionID), zap.Error(err))
	}

	logger.Info(ctx, "application submitted",
		zap.String("application_id", record.ID.String()),
		zap.String("session_id", sessionID))
	return record, nil
}

// Restart clears the profile and resets the step pointer to intro
func (u *WizardUsecase) Restart(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session := entities.NewWizardSession(sessionID)
	if err := u.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ValidateStep evaluates a step's required-field predicate against the
// profile. Intro and Review-before-terms have their own rules; the
// age failure is distinct from missing fields.
func ValidateStep(step entities.WizardStep, p *entities.ApplicantProfile) error {
	switch step {
	case entities.StepIntro:
		return nil

	case entities.StepPersonalInfo:
		var missing []string
		for _, f := range []struct{ name, value string }{
			{"first_name", p.FirstName},
			{"last_name", p.LastName},
			{"email", p.Email},
			{"phone", p.Phone},
			{"date_of_birth", p.DateOfBirth},
			{"address", p.Address},
			{"emergency_contact", p.EmergencyContact},
			{"id_number", p.IDNumber},
		} {
			if f.value == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return domainerrors.NewValidationError(step.String(), missing...)
		}
		age, err := ageAt(p.DateOfBirth, now())
		if err != nil {
			return domainerrors.NewValidationError(step.String(), "date_of_birth")
		}
		if age < MinimumAge {
			return &domainerrors.AgeIneligibleError{Age: age, Minimum: MinimumAge}
		}
		return nil

	case entities.StepProfessionalInfo:
		var missing []string
		if len(p.Skills) == 0 {
			missing = append(missing, "skills")
		}
		if len(p.Availability) == 0 {
			missing = append(missing, "availability")
		}
		if len(missing) > 0 {
			return domainerrors.NewValidationError(step.String(), missing...)
		}
		return nil

	case entities.StepDocumentUpload:
		var missing []string
		for _, kind := range []string{"id_document", "work_authorization"} {
			if _, ok := p.Documents[kind]; !ok {
				missing = append(missing, kind)
			}
		}
		if len(missing) > 0 {
			return domainerrors.NewValidationError(step.String(), missing...)
		}
		return nil

	case entities.StepReferences:
		complete := 0
		for _, ref := range p.References {
			if ref.Complete() {
				complete++
			}
		}
		if complete < 2 {
			return domainerrors.NewValidationError(step.String(), "references")
		}
		return nil

	case entities.StepBackgroundCheck:
		var missing []string
		if !p.BackgroundCheckConsent {
			missing = append(missing, "background_check_consent")
		}
		if p.WorkAuthorization != "Yes" {
			missing = append(missing, "work_authorization")
		}
		if len(missing) > 0 {
			return domainerrors.NewValidationError(step.String(), missing...)
		}
		return nil

	case entities.StepReview:
		if !p.TermsAgreed {
			return domainerrors.NewValidationError(step.String(), "terms_agreed")
		}
		return nil

	default:
		return domainerrors.BadRequest("unknown wizard step")
	}
}

// ageAt computes whole years between the date of birth and today,
// counting the current year only once the birthday has occurred.
func ageAt(dob string, today time.Time) (int, error) {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0, err
	}

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age, nil
}
