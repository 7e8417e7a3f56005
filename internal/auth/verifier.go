// Package auth verifies identity tokens presented by clients.
package auth

import (
	"context"

	"github.com/journalkeep/diary-server/internal/model"
)

// Verifier validates a bearer token and resolves it to a verified identity.
// A failed verification returns an error wrapping model.ErrInvalidToken.
type Verifier interface {
	Verify(ctx context.Context, token string) (*model.Identity, error)
}
