package api

import (
	"encoding/json"
	"net/http"

	respond "github.com/journalkeep/diary-server/internal/api/respond"
	"github.com/journalkeep/diary-server/internal/auth"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	verifier auth.Verifier
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(verifier auth.Verifier) *AuthHandler {
	return &AuthHandler{verifier: verifier}
}

// Login POST /login
// Verifies the submitted identity token and echoes the verified claims.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	identity, err := h.verifier.Verify(r.Context(), req.Token)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"user":   identity,
	})
}
