package api

import (
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/journalkeep/diary-server/internal/api/respond"
	"github.com/journalkeep/diary-server/internal/auth"
)

// RequireIdentity guards entry routes behind a verified bearer token. The
// entry surface ships unauthenticated by default; deployments opt in via
// DIARY_REQUIRE_AUTH.
func RequireIdentity(verifier auth.Verifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.ExtractBearerToken(r)
			if err != nil {
				respond.WriteUnauthorized(w, err.Error())
				return
			}
			if _, err := verifier.Verify(r.Context(), token); err != nil {
				respond.WriteForbidden(w, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
