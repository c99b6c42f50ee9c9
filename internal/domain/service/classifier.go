package service

import "context"

// Model is a loaded text classification model
type Model interface {
	// Predict returns the class label for text
	Predict(text string) (string, error)
}

// MarginScorer is implemented by models that expose a signed decision margin
type MarginScorer interface {
	// Score returns the class label for text together with its signed margin
	Score(text string) (label string, margin float64, err error)
}

// ClassificationResult represents the result of text classification.
// Confidence is nil when the backing model exposes no margin.
type ClassificationResult struct {
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence"`
}

// Classifier defines the interface for text classification
type Classifier interface {
	// Classify classifies a single text
	Classify(ctx context.Context, text, requestID string) (*ClassificationResult, error)
}

// ReadinessChecker is implemented by classifiers that depend on an external service
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}
