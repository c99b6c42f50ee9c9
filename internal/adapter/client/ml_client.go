package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// BatchPredictRequest represents a request to a remote prediction service.
// The batch endpoint classifies each text exactly as given, while the single
// endpoint trims and rejects empty input.
type BatchPredictRequest struct {
	Texts []string `json:"texts"`
}

// BatchItem represents one classified text in a remote response
type BatchItem struct {
	Prediction string   `json:"prediction"`
	IsReal     bool     `json:"is_real"`
	Confidence *float64 `json:"confidence"`
}

// BatchPredictResponse represents the response of a remote prediction service
type BatchPredictResponse struct {
	Predictions []BatchItem `json:"predictions"`
	Count       int         `json:"count"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MLClient is an HTTP client for a remote prediction service exposing the
// same /api surface as this one
type MLClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewMLClient creates a new prediction service client
func NewMLClient(baseURL string, timeout time.Duration) *MLClient {
	return &MLClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PredictBatch sends texts for classification, preserving their order
func (c *MLClient) PredictBatch(ctx context.Context, texts []string, requestID string) (*BatchPredictResponse, error) {
	body, err := json.Marshal(BatchPredictRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/batch-predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("prediction service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result BatchPredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Predictions) != len(texts) {
		return nil, fmt.Errorf("prediction service returned %d predictions for %d texts", len(result.Predictions), len(texts))
	}

	return &result, nil
}

// Health checks the prediction service health
func (c *MLClient) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	var result HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
