package entity

import (
	"fmt"
	"unicode/utf8"
)

// Label represents a news classification label
type Label string

const (
	LabelReal Label = "real"
	LabelFake Label = "fake"
)

// Preview settings for echoed input text
const (
	PreviewLength   = 100
	PreviewEllipsis = "..."
)

// Prediction is the shaped result of classifying one text
type Prediction struct {
	Label       Label
	IsReal      bool
	Confidence  *float64
	TextPreview string
}

// NewPrediction builds a Prediction for text. Confidence may be nil when the
// classifier exposes no margin.
func NewPrediction(text string, label Label, confidence *float64) *Prediction {
	return &Prediction{
		Label:       label,
		IsReal:      label == LabelReal,
		Confidence:  confidence,
		TextPreview: Preview(text),
	}
}

// Preview returns the first PreviewLength characters of text, followed by
// PreviewEllipsis when text is longer.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewLength {
		return text
	}
	count := 0
	for i := range text {
		if count == PreviewLength {
			return text[:i] + PreviewEllipsis
		}
		count++
	}
	return text
}

// ParseLabel converts a classifier label into a Label
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelReal, LabelFake:
		return Label(s), nil
	default:
		return "", fmt.Errorf("unexpected label %q", s)
	}
}
