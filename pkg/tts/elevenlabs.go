package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io"

// DefaultFormat is the output format used when the caller does not pick one.
const DefaultFormat = "mp3_44100_128"

// fallbackModels is the ordered chain tried when a model is rejected for
// the account's tier.
var fallbackModels = []string{
	"eleven_multilingual_v2",
	"eleven_monolingual_v2",
	"eleven_turbo_v2",
}

// ElevenLabsClient synthesizes speech from text.
type ElevenLabsClient struct {
	apiKey     string
	voiceID    string
	baseURL    string
	httpClient *http.Client
}

func NewElevenLabsClient(apiKey, voiceID string) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:     apiKey,
		voiceID:    voiceID,
		baseURL:    elevenLabsBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize converts text to audio bytes in the requested output format,
// walking the model fallback chain when a model is unavailable for the
// account tier.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, format string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("elevenlabs API key not configured")
	}
	if format == "" {
		format = DefaultFormat
	}

	var tried []string
	for _, model := range fallbackModels {
		tried = append(tried, model)

		audio, retryable, err := c.synthesizeWith(ctx, text, model, format)
		if err == nil {
			return audio, nil
		}
		if retryable {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("elevenlabs synthesis failed for all models %v", tried)
}

func (c *ElevenLabsClient) synthesizeWith(ctx context.Context, text, model, format string) (audio []byte, retryable bool, err error) {
	payload, err := json.Marshal(map[string]interface{}{
		"text":     text,
		"model_id": model,
		"voice_settings": map[string]float64{
			"stability":        0.5,
			"similarity_boost": 0.5,
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("elevenlabs encode: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=%s", c.baseURL, c.voiceID, format)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("elevenlabs request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("elevenlabs synthesis: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("elevenlabs read response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, false, nil
	}

	// Deprecated-for-tier models are the one case worth walking the chain
	// for; anything else is a real failure.
	var status struct {
		Detail struct {
			Status string `json:"status"`
		} `json:"detail"`
	}
	if json.Unmarshal(body, &status) == nil && status.Detail.Status == "model_deprecated_free_tier" {
		return nil, true, fmt.Errorf("elevenlabs model %s deprecated for tier", model)
	}

	return nil, false, fmt.Errorf("elevenlabs synthesis failed (%d): %s", resp.StatusCode, body)
}
