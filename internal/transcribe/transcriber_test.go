package transcribe

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wavFixture builds a minimal PCM16 mono RIFF/WAVE payload.
func wavFixture(t *testing.T, samples int) []byte {
	t.Helper()
	var buf bytes.Buffer
	dataLen := samples * 2

	buf.WriteString("RIFF")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(16)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1))) // PCM
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1))) // mono
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(16000)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(32000)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(2)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(16)))
	buf.WriteString("data")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(dataLen)))
	for i := 0; i < samples; i++ {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, int16(i%128)))
	}
	return buf.Bytes()
}

type stubRecognizer struct {
	text  string
	err   error
	calls int
}

func (s *stubRecognizer) Recognize(ctx context.Context, clip Clip) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestTranscribe_ReturnsRecognizedText(t *testing.T) {
	rec := &stubRecognizer{text: "note to self"}
	tr := New(rec)

	got := tr.Transcribe(context.Background(), wavFixture(t, 160))
	assert.Equal(t, "note to self", got)
	assert.Equal(t, 1, rec.calls)
}

func TestTranscribe_MalformedAudioYieldsEmpty(t *testing.T) {
	rec := &stubRecognizer{text: "should not be used"}
	tr := New(rec)

	for _, audio := range [][]byte{nil, {}, []byte("not a wav"), []byte("RIFFxxxxWAVE")} {
		assert.Equal(t, "", tr.Transcribe(context.Background(), audio))
	}
	assert.Equal(t, 0, rec.calls, "recognizer must not see undecodable audio")
}

func TestTranscribe_RecognizerErrorYieldsEmpty(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("engine unavailable")}
	tr := New(rec)

	assert.Equal(t, "", tr.Transcribe(context.Background(), wavFixture(t, 160)))
}

func TestTranscribe_NilRecognizerYieldsEmpty(t *testing.T) {
	tr := New(nil)
	assert.Equal(t, "", tr.Transcribe(context.Background(), wavFixture(t, 160)))
}

func TestDecodeWAV_Format(t *testing.T) {
	clip, err := DecodeWAV(wavFixture(t, 320))
	require.NoError(t, err)
	assert.Equal(t, 16000, clip.SampleRate)
	assert.Equal(t, 1, clip.Channels)
	assert.Equal(t, 16, clip.BitDepth)
	assert.Equal(t, 320, clip.Samples)
}

func TestDecodeWAV_NoSamples(t *testing.T) {
	_, err := DecodeWAV(wavFixture(t, 0))
	assert.Error(t, err)
}
