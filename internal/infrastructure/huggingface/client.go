package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brandwatch/internal/ports"
)

// Client talks to a Hugging Face Inference API text-classification model.
// The model resource behind the endpoint is the only process-wide state of
// the whole system; the client itself is stateless and safe to share.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.ToneClassifier = (*Client)(nil)

// NewClient creates a reusable HTTP client for one model endpoint.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Classify posts the text and returns the highest-confidence label.
func (c *Client) Classify(ctx context.Context, text string) (string, float64, error) {
	if c.endpoint == "" {
		return "", 0, fmt.Errorf("inference endpoint not configured")
	}

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", 0, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", 0, fmt.Errorf("inference error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	// The API nests scores one level deep: [[{label, score}, ...]].
	var predictions [][]prediction
	if err := json.NewDecoder(resp.Body).Decode(&predictions); err != nil {
		return "", 0, fmt.Errorf("decode response: %w", err)
	}

	if len(predictions) == 0 || len(predictions[0]) == 0 {
		return "", 0, fmt.Errorf("empty prediction")
	}

	best := predictions[0][0]
	for _, p := range predictions[0][1:] {
		if p.Score > best.Score {
			best = p
		}
	}

	return best.Label, best.Score, nil
}

type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
