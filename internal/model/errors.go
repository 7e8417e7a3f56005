package model

import "errors"

var (
	// ErrInvalidRequest marks caller input that fails a precondition. Handlers
	// surface it as a client error; no side effects have occurred when it is
	// returned.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidToken marks a failed identity-token verification.
	ErrInvalidToken = errors.New("invalid token")
)
