// Package mltest provides a small fitted pipeline for tests.
package mltest

import "github.com/mayaralabidi/Fake-News-Detection-ML/internal/ml"

// Sample texts with a known label under NewPipeline
const (
	RealText = "Scientists discover breakthrough in renewable energy."
	FakeText = "NASA secretly admitted that the Moon landing was faked."
)

// NewPipeline returns a fitted unigram+bigram pipeline with a dozen terms.
// Terms about science and government push towards "real", conspiracy terms
// towards "fake".
func NewPipeline() *ml.Pipeline {
	return &ml.Pipeline{
		Vectorizer: &ml.Vectorizer{
			Vocabulary: map[string]int{
				"scientists":   0,
				"discover":     1,
				"breakthrough": 2,
				"renewable":    3,
				"energy":       4,
				"secretly":     5,
				"faked":        6,
				"moon":         7,
				"moon landing": 8,
				"admitted":     9,
				"government":   10,
				"passed":       11,
			},
			IDF:        []float64{1.0, 1.2, 1.5, 1.3, 1.1, 2.0, 2.0, 1.0, 1.0, 1.4, 1.1, 1.2},
			NgramRange: [2]int{1, 2},
			Lowercase:  true,
			Norm:       ml.NormL2,
		},
		Classifier: &ml.LinearSVC{
			Coef:      []float64{1.0, 0.8, 1.2, 0.9, 0.7, -1.5, -2.0, -0.5, -1.5, -0.6, 0.6, 0.5},
			Intercept: 0.1,
			Classes:   []string{"fake", "real"},
		},
	}
}
