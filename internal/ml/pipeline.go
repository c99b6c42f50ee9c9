// Package ml evaluates fitted linear text classification pipelines.
//
// A Pipeline chains a TF-IDF Vectorizer with a LinearSVC. Both are fitted
// out-of-band and only ever read here, so a loaded Pipeline is safe for
// concurrent use.
package ml

import (
	"errors"
	"fmt"
)

// ErrNotFitted is returned when a pipeline is used without fitted steps
var ErrNotFitted = errors.New("pipeline is not fitted")

// Pipeline is a fitted vectorizer followed by a linear classifier
type Pipeline struct {
	Vectorizer *Vectorizer `json:"vectorizer"`
	Classifier *LinearSVC  `json:"classifier"`
}

// Info summarizes a pipeline for display
type Info struct {
	VocabularySize int      `json:"vocabulary_size" yaml:"vocabulary_size"`
	NgramRange     [2]int   `json:"ngram_range" yaml:"ngram_range"`
	Lowercase      bool     `json:"lowercase" yaml:"lowercase"`
	StripAccents   string   `json:"strip_accents" yaml:"strip_accents"`
	Norm           string   `json:"norm" yaml:"norm"`
	SublinearTF    bool     `json:"sublinear_tf" yaml:"sublinear_tf"`
	Classes        []string `json:"classes" yaml:"classes"`
	Intercept      float64  `json:"intercept" yaml:"intercept"`
}

// Validate checks that both steps are present and agree on the feature space.
func (p *Pipeline) Validate() error {
	if p == nil || p.Vectorizer == nil || p.Classifier == nil {
		return ErrNotFitted
	}
	if err := p.Vectorizer.Validate(); err != nil {
		return fmt.Errorf("invalid vectorizer: %w", err)
	}
	if err := p.Classifier.Validate(p.Vectorizer.Features()); err != nil {
		return fmt.Errorf("invalid classifier: %w", err)
	}
	return nil
}

// Predict returns the class label for text
func (p *Pipeline) Predict(text string) (string, error) {
	if p.Vectorizer == nil || p.Classifier == nil {
		return "", ErrNotFitted
	}
	return p.Classifier.Predict(p.Vectorizer.Transform(text)), nil
}

// DecisionFunction returns the classifier margin for text
func (p *Pipeline) DecisionFunction(text string) (float64, error) {
	if p.Vectorizer == nil || p.Classifier == nil {
		return 0, ErrNotFitted
	}
	return p.Classifier.DecisionFunction(p.Vectorizer.Transform(text)), nil
}

// Score returns the class label and the classifier margin for text,
// vectorizing it once.
func (p *Pipeline) Score(text string) (string, float64, error) {
	if p.Vectorizer == nil || p.Classifier == nil {
		return "", 0, ErrNotFitted
	}
	label, score := p.Classifier.Score(p.Vectorizer.Transform(text))
	return label, score, nil
}

// Info returns a summary of the fitted pipeline
func (p *Pipeline) Info() Info {
	info := Info{}
	if v := p.Vectorizer; v != nil {
		info.VocabularySize = len(v.Vocabulary)
		info.NgramRange = v.NgramRange
		info.Lowercase = v.Lowercase
		info.StripAccents = v.StripAccents
		info.Norm = v.Norm
		info.SublinearTF = v.SublinearTF
	}
	if c := p.Classifier; c != nil {
		info.Classes = append([]string(nil), c.Classes...)
		info.Intercept = c.Intercept
	}
	return info
}
