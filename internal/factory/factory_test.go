package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalkeep/diary-server/internal/config"
)

func TestNewEntryStore(t *testing.T) {
	log := zerolog.Nop()

	cfg := config.NewForTesting()
	st, err := NewEntryStore(cfg, log)
	require.NoError(t, err)
	assert.NotNil(t, st)

	cfg.StoreDriver = "sqlite"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "diary.db")
	st, err = NewEntryStore(cfg, log)
	require.NoError(t, err)
	assert.NotNil(t, st)

	cfg.StoreDriver = "redis"
	_, err = NewEntryStore(cfg, log)
	assert.Error(t, err)
}

func TestNewBlobStore(t *testing.T) {
	log := zerolog.Nop()

	cfg := config.NewForTesting()
	cfg.UploadDir = t.TempDir()
	bs, err := NewBlobStore(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.NotNil(t, bs)

	cfg.BlobBackend = "gdrive"
	_, err = NewBlobStore(context.Background(), cfg, log)
	assert.Error(t, err)
}

func TestNewTranscriber_WithoutKeyStillSafe(t *testing.T) {
	cfg := config.NewForTesting()
	tr := NewTranscriber(cfg, zerolog.Nop())
	require.NotNil(t, tr)
	assert.Equal(t, "", tr.Transcribe(context.Background(), []byte("not audio")))
}

func TestNewVerifier(t *testing.T) {
	cfg := config.NewForTesting()
	assert.NotNil(t, NewVerifier(cfg, zerolog.Nop()))

	cfg.GoogleClientID = "client.apps.googleusercontent.com"
	assert.NotNil(t, NewVerifier(cfg, zerolog.Nop()))
}
