package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/journalkeep/diary-server/internal/model"
)

// GoogleVerifier validates Google-issued ID tokens against a configured OAuth
// client ID. Token cryptography is fully delegated to the idtoken package.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier returns a verifier bound to the given client ID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify checks signature, expiry and audience, then extracts the profile
// claims the API exposes.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", model.ErrInvalidToken)
	}
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	id := &model.Identity{Subject: payload.Subject}
	if s, ok := payload.Claims["email"].(string); ok {
		id.Email = s
	}
	if s, ok := payload.Claims["name"].(string); ok {
		id.Name = s
	}
	if s, ok := payload.Claims["picture"].(string); ok {
		id.Picture = s
	}
	return id, nil
}
