// Package gspeech recognizes speech through the Google Cloud Speech REST API.
package gspeech

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/journalkeep/diary-server/internal/transcribe"
)

// Recognizer posts LINEAR16 WAV content to the speech:recognize endpoint.
type Recognizer struct {
	client   *resty.Client
	apiKey   string
	language string
}

// New builds a recognizer against baseURL (normally
// https://speech.googleapis.com) authenticated by API key.
func New(baseURL, apiKey, language string) *Recognizer {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	return &Recognizer{client: client, apiKey: apiKey, language: language}
}

type recognizeRequest struct {
	Config recognitionConfig `json:"config"`
	Audio  recognitionAudio  `json:"audio"`
}

type recognitionConfig struct {
	Encoding          string `json:"encoding"`
	SampleRateHertz   int    `json:"sampleRateHertz"`
	AudioChannelCount int    `json:"audioChannelCount,omitempty"`
	LanguageCode      string `json:"languageCode"`
}

type recognitionAudio struct {
	Content string `json:"content"`
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"results"`
}

// Recognize sends the clip and returns the top alternative of the first
// result. An empty result set is not an error; it recognizes to "".
func (r *Recognizer) Recognize(ctx context.Context, clip transcribe.Clip) (string, error) {
	req := recognizeRequest{
		Config: recognitionConfig{
			Encoding:        "LINEAR16",
			SampleRateHertz: clip.SampleRate,
			LanguageCode:    r.language,
		},
		Audio: recognitionAudio{
			Content: base64.StdEncoding.EncodeToString(clip.Content),
		},
	}
	if clip.Channels > 1 {
		req.Config.AudioChannelCount = clip.Channels
	}

	var out recognizeResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("key", r.apiKey).
		SetBody(req).
		SetResult(&out).
		Post("/v1/speech:recognize")
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("speech recognize: status %d: %s", resp.StatusCode(), resp.String())
	}

	if len(out.Results) == 0 || len(out.Results[0].Alternatives) == 0 {
		return "", nil
	}
	return out.Results[0].Alternatives[0].Transcript, nil
}
