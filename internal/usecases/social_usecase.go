package usecases

import (
	"context"
)

// PageProvider is the page-level Graph API surface
type PageProvider interface {
	PageConfigured() bool
	GetPageInfo(ctx context.Context) (map[string]interface{}, error)
	GetInsights(ctx context.Context) (map[string]interface{}, error)
	CreatePost(ctx context.Context, message string) (map[string]interface{}, error)
}

// SocialUsecase is the thin pass-through to the social page API.
// When credentials are not configured the calls return nil rather
// than failing, matching the demo front end's expectations.
type SocialUsecase struct {
	provider PageProvider
}

// NewSocialUsecase creates a new social usecase
func NewSocialUsecase(provider PageProvider) *SocialUsecase {
	return &SocialUsecase{provider: provider}
}

// GetPageInfo returns page details, or nil when unconfigured
func (u *SocialUsecase) GetPageInfo(ctx context.Context) (map[string]interface{}, error) {
	return u.provider.GetPageInfo(ctx)
}

// GetInsights returns page metrics, or nil when unconfigured
func (u *SocialUsecase) GetInsights(ctx context.Context) (map[string]interface{}, error) {
	return u.provider.GetInsights(ctx)
}

// CreatePost publishes a message to the page feed
func (u *SocialUsecase) CreatePost(ctx context.Context, message string) (map[string]interface{}, error) {
	return u.provider.CreatePost(ctx, message)
}
