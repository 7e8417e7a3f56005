package diary

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalkeep/diary-server/internal/blob"
	"github.com/journalkeep/diary-server/internal/model"
	"github.com/journalkeep/diary-server/internal/store/memstore"
	"github.com/journalkeep/diary-server/internal/transcribe"
)

type fakeBlobStore struct {
	mu    sync.Mutex
	saves []string
}

func (f *fakeBlobStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, name)
	return "/blobs/" + name, nil
}

type fixedTranscriber struct {
	text string
}

func (f fixedTranscriber) Transcribe(ctx context.Context, audio []byte) string { return f.text }

func newTestService(blobs blob.Store, tr transcribe.Transcriber) (*Service, *memstore.Store) {
	st := memstore.New()
	return NewService(st, blobs, tr), st
}

func TestCreateEntry_NoContentRejectedWithoutSideEffects(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, st := newTestService(blobs, fixedTranscriber{})

	_, err := svc.CreateEntry(context.Background(), CreateEntryRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRequest)

	assert.Empty(t, blobs.saves, "no blob writes on rejected request")
	assert.Equal(t, 0, st.Len(), "no store mutation on rejected request")
}

func TestCreateEntry_ExplicitTextWinsOverTranscription(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, _ := newTestService(blobs, fixedTranscriber{text: "world"})

	entry, err := svc.CreateEntry(context.Background(), CreateEntryRequest{
		Text:  "hello",
		Audio: &FileUpload{Filename: "voice.wav", ContentType: "audio/wav", Data: []byte("aud")},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", entry.Text, "transcription must not replace explicit text")
}

func TestCreateEntry_TranscriptionFillsEmptyText(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, _ := newTestService(blobs, fixedTranscriber{text: "note to self"})

	entry, err := svc.CreateEntry(context.Background(), CreateEntryRequest{
		Image: &FileUpload{Filename: "pic.png", ContentType: "image/png", Data: []byte("img")},
		Audio: &FileUpload{Filename: "voice.wav", ContentType: "audio/wav", Data: []byte("aud")},
	})
	require.NoError(t, err)

	assert.Equal(t, "note to self", entry.Text)
	require.Len(t, entry.Attachments, 2)
	assert.Equal(t, model.AttachmentImage, entry.Attachments[0].Kind)
	assert.Equal(t, model.AttachmentAudio, entry.Attachments[1].Kind)
}

func TestCreateEntry_FailedTranscriptionStillSucceeds(t *testing.T) {
	blobs := &fakeBlobStore{}
	// real transcriber, no recognizer: undecodable audio collapses to ""
	svc, st := newTestService(blobs, transcribe.New(nil))

	entry, err := svc.CreateEntry(context.Background(), CreateEntryRequest{
		Audio: &FileUpload{Filename: "voice.wav", ContentType: "audio/wav", Data: []byte("not a wav")},
	})
	require.NoError(t, err)

	assert.Equal(t, "", entry.Text)
	require.Len(t, entry.Attachments, 1)
	assert.Equal(t, model.AttachmentAudio, entry.Attachments[0].Kind)
	assert.Equal(t, 1, st.Len())
}

// failAudioBlobStore accepts images and rejects audio, so the audio write
// fails after the image write succeeded.
type failAudioBlobStore struct {
	saves int
}

func (f *failAudioBlobStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if strings.HasSuffix(name, ".wav") {
		return "", errors.New("io error")
	}
	f.saves++
	return "/blobs/" + name, nil
}

func TestCreateEntry_BlobFailureAbortsWholeOperation(t *testing.T) {
	blobs := &failAudioBlobStore{}
	svc, st := newTestService(blobs, fixedTranscriber{})

	_, err := svc.CreateEntry(context.Background(), CreateEntryRequest{
		Image: &FileUpload{Filename: "pic.png", Data: []byte("img")},
		Audio: &FileUpload{Filename: "voice.wav", Data: []byte("aud")},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInvalidRequest, "storage failure is a server error, not a validation error")
	assert.Equal(t, 0, st.Len(), "no partial entry after blob failure")
	assert.Equal(t, 1, blobs.saves, "image blob already written is orphaned, not rolled back")
}

func TestCreateEntry_NamespacesBlobsByEntryID(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, _ := newTestService(blobs, fixedTranscriber{})

	entry, err := svc.CreateEntry(context.Background(), CreateEntryRequest{
		Image: &FileUpload{Filename: "pic.png", Data: []byte("img")},
	})
	require.NoError(t, err)

	require.Len(t, blobs.saves, 1)
	assert.Equal(t, entry.ID+"_pic.png", blobs.saves[0])
	assert.Equal(t, "/blobs/"+entry.ID+"_pic.png", entry.Attachments[0].Locator)
}

func TestCreateEntry_TextOnly(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, st := newTestService(blobs, fixedTranscriber{})

	entry, err := svc.CreateEntry(context.Background(), CreateEntryRequest{Text: "just words"})
	require.NoError(t, err)
	assert.Equal(t, "just words", entry.Text)
	assert.Empty(t, entry.Attachments)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, 1, st.Len())
}

func TestCreateEntry_ConcurrentCreationsYieldDistinctIDs(t *testing.T) {
	svc, st := newTestService(&fakeBlobStore{}, fixedTranscriber{})
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.CreateEntry(ctx, CreateEntryRequest{Text: "concurrent"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := svc.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, n)

	ids := make(map[string]bool, n)
	for _, e := range entries {
		ids[e.ID] = true
	}
	assert.Len(t, ids, n, "concurrent creations must yield distinct IDs")
	assert.Equal(t, n, st.Len())
}

func TestListEntries_ReflectsAppendOrder(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc, _ := newTestService(blobs, fixedTranscriber{})
	ctx := context.Background()

	for _, txt := range []string{"a", "b", "c"} {
		_, err := svc.CreateEntry(ctx, CreateEntryRequest{Text: txt})
		require.NoError(t, err)
	}

	got, err := svc.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "c", got[2].Text)
}
