package ml

import (
	"errors"
	"fmt"
)

// LinearSVC is a fitted binary linear support-vector classifier
type LinearSVC struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
	Classes   []string  `json:"classes"`
}

// Validate checks the classifier against the expected number of features.
func (m *LinearSVC) Validate(features int) error {
	if m == nil {
		return errors.New("classifier is missing")
	}
	if len(m.Classes) != 2 {
		return fmt.Errorf("expected 2 classes, got %d", len(m.Classes))
	}
	if len(m.Coef) != features {
		return fmt.Errorf("classifier has %d coefficients, vectorizer produces %d features", len(m.Coef), features)
	}
	return nil
}

// DecisionFunction returns the signed distance of x to the separating hyperplane.
func (m *LinearSVC) DecisionFunction(x SparseVector) float64 {
	return x.Dot(m.Coef) + m.Intercept
}

// Predict returns the positive class when the decision score is above zero.
func (m *LinearSVC) Predict(x SparseVector) string {
	label, _ := m.Score(x)
	return label
}

// Score returns the predicted class and the decision score from one evaluation.
func (m *LinearSVC) Score(x SparseVector) (string, float64) {
	score := m.DecisionFunction(x)
	if score > 0 {
		return m.Classes[1], score
	}
	return m.Classes[0], score
}
