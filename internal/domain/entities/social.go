package entities

import "time"

// OAuthToken is the opaque access token returned by the provider.
// It is held only long enough to fetch the profile, never persisted.
type OAuthToken struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt,omitempty"`
}

// SocialProfile holds the identity fields fetched from the provider
type SocialProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	PictureURL string `json:"pictureUrl"`
}
