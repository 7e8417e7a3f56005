package transcribe

import (
	"bytes"
	"fmt"

	"github.com/go-audio/wav"
)

// DecodeWAV parses data as a RIFF/WAVE recording and returns a Clip carrying
// the original bytes plus the decoded format. Unsupported or malformed
// containers return an error; Transcribe turns that into the empty-string
// result.
func DecodeWAV(data []byte) (Clip, error) {
	if len(data) == 0 {
		return Clip{}, fmt.Errorf("empty audio payload")
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return Clip{}, fmt.Errorf("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("decode PCM: %w", err)
	}
	if len(buf.Data) == 0 {
		return Clip{}, fmt.Errorf("recording contains no samples")
	}

	return Clip{
		Content:    data,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Samples:    len(buf.Data),
	}, nil
}
