// Package diary contains the core business logic for assembling entries.
package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/journalkeep/diary-server/internal/blob"
	"github.com/journalkeep/diary-server/internal/model"
	"github.com/journalkeep/diary-server/internal/store"
	"github.com/journalkeep/diary-server/internal/transcribe"
)

// Service turns one create-entry request into exactly one DiaryEntry. The
// store, blob store and transcriber are injected; the service owns no
// process-wide state of its own.
type Service struct {
	store store.EntryStore
	blobs blob.Store
	trans transcribe.Transcriber
}

// NewService creates a new diary service.
func NewService(st store.EntryStore, blobs blob.Store, trans transcribe.Transcriber) *Service {
	return &Service{store: st, blobs: blobs, trans: trans}
}

// CreateEntry validates the request, persists side uploads, applies the
// transcription fallback, and appends the assembled entry.
//
// Side effects run image-then-audio-then-append. Validation happens before any
// of them; a blob failure aborts the whole operation so no partial entry is
// ever stored. Blobs already written when a later step fails are orphaned, not
// rolled back.
func (s *Service) CreateEntry(ctx context.Context, req CreateEntryRequest) (*model.DiaryEntry, error) {
	if err := s.validateCreateEntryRequest(req); err != nil {
		return nil, err
	}

	entry := &model.DiaryEntry{
		ID:        uuid.NewString(),
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}

	if req.Image != nil {
		locator, err := s.blobs.Save(ctx, blobName(entry.ID, req.Image.Filename), req.Image.Data)
		if err != nil {
			log.Error().Err(err).Str("entryID", entry.ID).Msg("image upload failed")
			return nil, fmt.Errorf("save image: %w", err)
		}
		entry.Attachments = append(entry.Attachments, model.Attachment{
			Kind:    model.AttachmentImage,
			Locator: locator,
		})
	}

	if req.Audio != nil {
		locator, err := s.blobs.Save(ctx, blobName(entry.ID, req.Audio.Filename), req.Audio.Data)
		if err != nil {
			log.Error().Err(err).Str("entryID", entry.ID).Msg("audio upload failed")
			return nil, fmt.Errorf("save audio: %w", err)
		}

		// Transcription is a fallback: explicit text always wins.
		if transcription := s.trans.Transcribe(ctx, req.Audio.Data); transcription != "" && req.Text == "" {
			entry.Text = transcription
		}

		entry.Attachments = append(entry.Attachments, model.Attachment{
			Kind:    model.AttachmentAudio,
			Locator: locator,
		})
	}

	if err := s.store.Append(ctx, entry); err != nil {
		log.Error().Err(err).Str("entryID", entry.ID).Msg("entry append failed")
		return nil, fmt.Errorf("append entry: %w", err)
	}

	log.Info().
		Str("entryID", entry.ID).
		Int("attachments", len(entry.Attachments)).
		Bool("transcribed", req.Audio != nil && req.Text == "" && entry.Text != "").
		Msg("entry created")
	return entry, nil
}

// ListEntries returns all entries in creation order.
func (s *Service) ListEntries(ctx context.Context) ([]*model.DiaryEntry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("ListEntries failed")
	}
	return entries, err
}

func (s *Service) validateCreateEntryRequest(req CreateEntryRequest) error {
	if req.empty() {
		return NewValidationError("entry", "at least one of text, image or audio must be provided")
	}
	return nil
}

// blobName namespaces an uploaded file by entry ID so names cannot collide
// across entries. Within one entry, duplicate filenames overwrite.
func blobName(entryID, filename string) string {
	return entryID + "_" + filename
}
