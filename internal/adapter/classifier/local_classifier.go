package classifier

import (
	"context"
	"fmt"
	"math"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/modelstore"
)

// LocalClassifier classifies text with a model held in process.
// The model is never mutated after construction, so one instance serves all requests.
type LocalClassifier struct {
	model   service.Model
	modelID string
}

// NewLocalClassifier loads the model artifact at modelPath once.
func NewLocalClassifier(modelPath string) (*LocalClassifier, error) {
	artifact, err := modelstore.LoadArtifact(modelPath)
	if err != nil {
		return nil, err
	}
	return &LocalClassifier{model: artifact.Model, modelID: "sha256:" + artifact.Checksum}, nil
}

// NewLocalClassifierFromModel wraps an already loaded model
func NewLocalClassifierFromModel(model service.Model) *LocalClassifier {
	return &LocalClassifier{model: model, modelID: "in-memory"}
}

// ModelID identifies the loaded artifact by content
func (c *LocalClassifier) ModelID() string {
	return c.modelID
}

// Classify predicts the label of text. Confidence is the absolute decision
// margin when the model is a service.MarginScorer and nil otherwise.
func (c *LocalClassifier) Classify(_ context.Context, text, _ string) (*service.ClassificationResult, error) {
	if scorer, ok := c.model.(service.MarginScorer); ok {
		label, margin, err := scorer.Score(text)
		if err != nil {
			return nil, fmt.Errorf("model scoring failed: %w", err)
		}
		confidence := math.Abs(margin)
		return &service.ClassificationResult{Label: label, Confidence: &confidence}, nil
	}

	label, err := c.model.Predict(text)
	if err != nil {
		return nil, fmt.Errorf("model prediction failed: %w", err)
	}
	return &service.ClassificationResult{Label: label}, nil
}
