package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/journalkeep/diary-server/internal/api"
	"github.com/journalkeep/diary-server/internal/config"
	"github.com/journalkeep/diary-server/internal/factory"
	"github.com/journalkeep/diary-server/internal/platform/logger"
)

func main() {
	// Optional flag overrides for local runs
	httpPort := flag.Int("http-port", 0, "Override DIARY_HTTP_PORT")
	uploadDir := flag.String("upload-dir", "", "Override DIARY_UPLOAD_DIR")
	flag.Parse()

	log := logger.New("diary-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *httpPort != 0 {
		cfg.HTTPPort = *httpPort
	}
	if *uploadDir != "" {
		cfg.UploadDir = *uploadDir
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid upload-dir override")
		}
	}

	log.Info().
		Str("blob_backend", cfg.BlobBackend).
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Bool("require_auth", cfg.RequireAuth).
		Msg("Diary service starting…")

	ctx := context.Background()

	// -------- Collaborators -----------------
	entryStore, err := factory.NewEntryStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Entry store unavailable")
	}
	blobStore, err := factory.NewBlobStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Blob store unavailable")
	}
	transcriber := factory.NewTranscriber(cfg, log)
	verifier := factory.NewVerifier(cfg, log)

	// -------- Router & Server --------------
	router := api.NewRouter(api.Deps{
		Store:       entryStore,
		Blobs:       blobStore,
		Transcriber: transcriber,
		Verifier:    verifier,
		Cfg:         cfg,
	})
	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
