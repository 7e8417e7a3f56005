// Package transcribe converts audio recordings into best-effort text.
//
// The public contract is deliberately lossy: Transcribe never returns an
// error. Any failure while decoding the container or talking to the
// recognition engine collapses to an empty string so that a bad recording can
// never block entry creation.
package transcribe

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Clip is a decoded recording handed to a Recognizer.
type Clip struct {
	// Content is the original container bytes, suitable for engines that
	// accept the container directly.
	Content    []byte
	SampleRate int
	Channels   int
	BitDepth   int
	// Samples is the total PCM frame count across channels.
	Samples int
}

// Recognizer turns a decoded clip into text. Implementations may call a
// remote engine and should honor ctx for cancellation.
type Recognizer interface {
	Recognize(ctx context.Context, clip Clip) (string, error)
}

// Transcriber is the degrade-gracefully speech-to-text façade.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) string
}

type transcriber struct {
	rec Recognizer
}

// New wraps a recognizer in the empty-string-on-failure contract. A nil
// recognizer is valid and transcribes everything to "".
func New(rec Recognizer) Transcriber {
	return &transcriber{rec: rec}
}

func (t *transcriber) Transcribe(ctx context.Context, audio []byte) string {
	clip, err := DecodeWAV(audio)
	if err != nil {
		log.Debug().Err(err).Int("bytes", len(audio)).Msg("audio decode failed, skipping transcription")
		return ""
	}
	if t.rec == nil {
		log.Debug().Msg("no recognizer configured, skipping transcription")
		return ""
	}
	text, err := t.rec.Recognize(ctx, clip)
	if err != nil {
		log.Warn().Err(err).Msg("speech recognition failed, entry proceeds without transcription")
		return ""
	}
	return text
}
