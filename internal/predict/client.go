package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to the external fire-risk inference service.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the inference endpoint at the given URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Predict posts the features and returns the model's classification.
func (c *Client) Predict(ctx context.Context, features Features) (Prediction, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("inference service returned status %d", resp.StatusCode)
	}

	var prediction Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return Prediction{}, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return prediction, nil
}
