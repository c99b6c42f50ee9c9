package client

import (
	"context"
	"fmt"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
)

// MLClassifier adapts MLClient to the Classifier interface
type MLClassifier struct {
	client *MLClient
}

// NewMLClassifier creates a new MLClassifier
func NewMLClassifier(client *MLClient) *MLClassifier {
	return &MLClassifier{client: client}
}

// Classify classifies a single text
func (c *MLClassifier) Classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	resp, err := c.client.PredictBatch(ctx, []string{text}, requestID)
	if err != nil {
		return nil, err
	}

	item := resp.Predictions[0]
	return &service.ClassificationResult{
		Label:      item.Prediction,
		Confidence: item.Confidence,
	}, nil
}

// ModelID identifies the remote service backing this classifier
func (c *MLClassifier) ModelID() string {
	return "remote:" + c.client.baseURL
}

// Ready reports whether the remote service answers its health check
func (c *MLClassifier) Ready(ctx context.Context) error {
	resp, err := c.client.Health(ctx)
	if err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return fmt.Errorf("prediction service not ready: status %q", resp.Status)
	}
	return nil
}
