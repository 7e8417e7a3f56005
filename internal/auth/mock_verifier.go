package auth

import (
	"context"
	"fmt"

	"github.com/journalkeep/diary-server/internal/model"
)

const (
	// LocalDevToken is the hardcoded token for local development only.
	LocalDevToken = "diary-local-dev-token"
)

// MockVerifier provides a simple verifier for local development. It only
// recognizes the hardcoded LocalDevToken and resolves it to a fixed identity.
type MockVerifier struct{}

// NewMockVerifier creates a new MockVerifier for local development.
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{}
}

// Verify accepts only LocalDevToken.
func (m *MockVerifier) Verify(ctx context.Context, token string) (*model.Identity, error) {
	if token != LocalDevToken {
		return nil, fmt.Errorf("%w: unknown local development token", model.ErrInvalidToken)
	}
	return &model.Identity{
		Subject: "diary-dev",
		Email:   "dev@localhost",
		Name:    "Local Development User",
	}, nil
}
