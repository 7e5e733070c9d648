package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/pkg/logger"
	"cleanfee.backend/pkg/oauthstate"
)

// SocialLoginProvider is the outbound side of the authorization-code
// flow: URL construction, the code exchange and the profile fetch.
type SocialLoginProvider interface {
	LoginConfigured() bool
	BuildAuthorizationURL(state string, scopes []string) string
	ExchangeCode(ctx context.Context, code string) (*entities.OAuthToken, error)
	FetchProfile(ctx context.Context, token *entities.OAuthToken) (*entities.SocialProfile, error)
}

// Scopes requested from the provider for the wizard pre-fill
var loginScopes = []string{"public_profile", "email"}

// OAuthUsecase runs the social-login flow that pre-fills the wizard
type OAuthUsecase struct {
	provider SocialLoginProvider
	state    *oauthstate.Service
	wizard   *WizardUsecase
}

// NewOAuthUsecase creates a new OAuth usecase
func NewOAuthUsecase(provider SocialLoginProvider, state *oauthstate.Service, wizard *WizardUsecase) *OAuthUsecase {
	return &OAuthUsecase{
		provider: provider,
		state:    state,
		wizard:   wizard,
	}
}

// LoginURL issues an anti-forgery state token bound to the session and
// returns the authorization URL the client should open.
func (u *OAuthUsecase) LoginURL(ctx context.Context, sessionID string) (url, state string, err error) {
	if !u.provider.LoginConfigured() {
		return "", "", domainerrors.NewAppError(503, "social login is not configured", domainerrors.ErrNotConfigured)
	}
	if _, err := u.wizard.GetSession(ctx, sessionID); err != nil {
		return "", "", err
	}

	state, err = u.state.Issue(sessionID)
	if err != nil {
		return "", "", err
	}
	return u.provider.BuildAuthorizationURL(state, loginScopes), state, nil
}

// HandleCallback completes the flow: verify state, exchange the
// one-time code, fetch the profile, merge it into the applicant
// profile where fields are still empty, and move the wizard to the
// personal-info step. A state mismatch fails closed: authentication is
// rejected and no profile data is fetched or written. The code itself
// is never stored or echoed back.
func (u *OAuthUsecase) HandleCallback(ctx context.Context, sessionID, code, state string) (*entities.WizardSession, error) {
	if err := u.state.Verify(state, sessionID); err != nil {
		logger.Warn(ctx, "oauth state verification failed", zap.String("session_id", sessionID))
		return nil, domainerrors.Unauthorized("state verification failed")
	}

	token, err := u.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, mapProviderError(err)
	}

	profile, err := u.provider.FetchProfile(ctx, token)
	if err != nil {
		return nil, mapProviderError(err)
	}

	session, err := u.wizard.UpdateProfile(ctx, sessionID, func(p *entities.ApplicantProfile) {
		MergeSocialProfile(p, profile)
	})
	if err != nil {
		return nil, err
	}

	// Skip the intro step; the login replaces it.
	if session.Step < entities.StepPersonalInfo {
		session.Step = entities.StepPersonalInfo
		if err := u.wizard.sessions.Save(ctx, session); err != nil {
			return nil, err
		}
	}

	logger.Info(ctx, "oauth login completed", zap.String("session_id", sessionID))
	return session, nil
}

// MergeSocialProfile copies provider fields into the applicant profile
// if and only if they are currently empty. Re-running the merge is a
// no-op: user-edited values are never overwritten.
func MergeSocialProfile(p *entities.ApplicantProfile, sp *entities.SocialProfile) {
	if p.FirstName == "" {
		p.FirstName = sp.FirstName
	}
	if p.LastName == "" {
		p.LastName = sp.LastName
	}
	if p.Email == "" {
		p.Email = sp.Email
	}
	if p.PictureURL == "" {
		p.PictureURL = sp.PictureURL
	}
}

func mapProviderError(err error) error {
	switch {
	case errors.Is(err, domainerrors.ErrNetwork):
		return domainerrors.BadGateway("social provider unreachable", err)
	case errors.Is(err, domainerrors.ErrProvider):
		return domainerrors.BadGateway("social provider returned an invalid response", err)
	default:
		return err
	}
}
