// Package factory builds the configurable collaborators from config.
package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/journalkeep/diary-server/internal/auth"
	"github.com/journalkeep/diary-server/internal/blob"
	blobfs "github.com/journalkeep/diary-server/internal/blob/fs"
	blobs3 "github.com/journalkeep/diary-server/internal/blob/s3"
	"github.com/journalkeep/diary-server/internal/config"
	"github.com/journalkeep/diary-server/internal/store"
	"github.com/journalkeep/diary-server/internal/store/memstore"
	"github.com/journalkeep/diary-server/internal/store/sqlitestore"
	"github.com/journalkeep/diary-server/internal/transcribe"
	"github.com/journalkeep/diary-server/internal/transcribe/gspeech"
)

// NewEntryStore selects the entry store by STORE_DRIVER.
func NewEntryStore(cfg *config.Config, log zerolog.Logger) (store.EntryStore, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memstore.New(), nil
	case "sqlite":
		log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite entry store")
		return sqlitestore.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}
}

// NewBlobStore selects the blob store by BLOB_BACKEND.
func NewBlobStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (blob.Store, error) {
	switch cfg.BlobBackend {
	case "fs":
		log.Info().Str("dir", cfg.UploadDir).Msg("using filesystem blob store")
		return blobfs.New(cfg.UploadDir)
	case "s3":
		log.Info().Str("bucket", cfg.S3Bucket).Msg("using s3 blob store")
		return blobs3.New(ctx, blobs3.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown BLOB_BACKEND: %s", cfg.BlobBackend)
	}
}

// NewTranscriber wires the speech recognizer when an API key is configured;
// otherwise transcription degrades to the empty string.
func NewTranscriber(cfg *config.Config, log zerolog.Logger) transcribe.Transcriber {
	if cfg.SpeechAPIKey == "" {
		log.Warn().Msg("no speech API key configured, audio entries will not be transcribed")
		return transcribe.New(nil)
	}
	return transcribe.New(gspeech.New(cfg.SpeechAPIURL, cfg.SpeechAPIKey, cfg.SpeechLanguage))
}

// NewVerifier returns the Google ID-token verifier when a client ID is
// configured, falling back to the local development verifier.
func NewVerifier(cfg *config.Config, log zerolog.Logger) auth.Verifier {
	if cfg.GoogleClientID == "" {
		log.Warn().Msg("no Google client ID configured, using local development verifier")
		return auth.NewMockVerifier()
	}
	return auth.NewGoogleVerifier(cfg.GoogleClientID)
}
