package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const hfBaseURL = "https://api-inference.huggingface.co"

// Result is one model prediction: the raw three-class label with its
// confidence, before any score-band remapping.
type Result struct {
	Label      string
	Confidence float64
}

type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

// HuggingFaceClient calls the hosted inference API for a three-class
// sentiment model.
type HuggingFaceClient struct {
	token      string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewHuggingFaceClient(token, model string) *HuggingFaceClient {
	return &HuggingFaceClient{
		token:      token,
		model:      model,
		baseURL:    hfBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HuggingFaceClient) Classify(ctx context.Context, text string) (Result, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return Result{}, fmt.Errorf("huggingface encode: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("huggingface request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("huggingface inference: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("huggingface inference: unexpected status %d", resp.StatusCode)
	}

	// The API returns one list of class scores per input.
	var raw [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Result{}, fmt.Errorf("huggingface decode: %w", err)
	}
	if len(raw) == 0 || len(raw[0]) == 0 {
		return Result{}, fmt.Errorf("huggingface inference: empty response")
	}

	best := raw[0][0]
	for _, cand := range raw[0][1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}

	return Result{Label: best.Label, Confidence: best.Score}, nil
}
