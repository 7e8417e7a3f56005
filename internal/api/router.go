package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/journalkeep/diary-server/internal/api/recovery"
	"github.com/journalkeep/diary-server/internal/auth"
	"github.com/journalkeep/diary-server/internal/blob"
	"github.com/journalkeep/diary-server/internal/config"
	"github.com/journalkeep/diary-server/internal/core/diary"
	"github.com/journalkeep/diary-server/internal/search"
	"github.com/journalkeep/diary-server/internal/store"
	"github.com/journalkeep/diary-server/internal/transcribe"
)

// Deps carries the collaborators the router wires into handlers. Everything is
// passed in explicitly; no handler reaches for ambient state.
type Deps struct {
	Store       store.EntryStore
	Blobs       blob.Store
	Transcriber transcribe.Transcriber
	Verifier    auth.Verifier
	Cfg         *config.Config
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(deps Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares. CORS is wide open so browser frontends on any
	// origin can call the API directly.
	router.Use(recovery.Middleware)
	router.Use(cors.AllowAll().Handler)

	// Create domain services
	entryService := diary.NewService(deps.Store, deps.Blobs, deps.Transcriber)
	queryEngine := search.NewEngine(deps.Store)

	// Create handlers
	healthHandler := NewHealthHandler()
	authHandler := NewAuthHandler(deps.Verifier)
	entryHandler := NewEntryHandler(entryService, queryEngine)

	// Health endpoint
	router.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	// Auth endpoint
	router.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Entry endpoints, optionally behind verified identity
	entries := router.PathPrefix("/entries").Subrouter()
	if deps.Cfg != nil && deps.Cfg.RequireAuth {
		entries.Use(RequireIdentity(deps.Verifier))
	}
	entries.HandleFunc("", entryHandler.CreateEntry).Methods("POST")
	entries.HandleFunc("", entryHandler.ListEntries).Methods("GET")
	entries.HandleFunc("/search", entryHandler.SearchEntries).Methods("GET")

	return router
}
