package oauthstate

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidState = errors.New("invalid state token")
	ErrExpiredState = errors.New("state token has expired")
)

// Claims binds an anti-forgery state token to one wizard session. The
// nonce makes every issued token unique even within the same session.
type Claims struct {
	SessionID string `json:"sessionId"`
	Nonce     string `json:"nonce"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed OAuth state tokens
type Service struct {
	secret []byte
	expiry time.Duration
}

var signStateToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewService creates a new state token service
func NewService(secret string, expiry time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue creates a state token bound to the given session id
func (s *Service) Issue(sessionID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		Nonce:     uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signStateToken(token, s.secret)
}

// Verify checks signature and expiry and confirms the token belongs to
// the given session. Any failure is a state mismatch: the caller must
// fail closed without fetching a profile.
func (s *Service) Verify(tokenString, sessionID string) error {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidState
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredState
		}
		return ErrInvalidState
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return ErrInvalidState
	}
	if claims.SessionID != sessionID {
		return ErrInvalidState
	}

	return nil
}
