package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/gigfit/backend/config"
)

// GoogleAuthService validates Google sign-in ID tokens against the
// configured OAuth client ID
type GoogleAuthService struct {
	clientID string
}

// GoogleUserInfo is the identity extracted from a verified ID token.
// Name and Picture may be empty; Email and GoogleID never are.
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// NewGoogleAuthService builds the verifier from config. An empty
// GOOGLE_CLIENT_ID leaves Google sign-in disabled until VerifyIDToken
// reports it.
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{
		clientID: cfg.GoogleClientID,
	}
}

// VerifyIDToken checks the token signature and audience with Google and
// returns the identity it asserts
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, errors.New("Google sign-in is not configured")
	}

	payload, err := idtoken.Validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	userInfo := &GoogleUserInfo{
		GoogleID: payload.Subject,
		Email:    stringClaim(payload.Claims, "email"),
		Name:     stringClaim(payload.Claims, "name"),
		Picture:  stringClaim(payload.Claims, "picture"),
	}
	if userInfo.Email == "" {
		return nil, errors.New("verified token carries no email claim")
	}
	return userInfo, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
