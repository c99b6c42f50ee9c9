package ml

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalization modes applied to the weighted term vector
const (
	NormL2   = "l2"
	NormL1   = "l1"
	NormNone = ""
)

// Accent stripping modes applied before tokenization
const (
	StripAccentsNone    = ""
	StripAccentsUnicode = "unicode"
	StripAccentsASCII   = "ascii"
)

// Feature is a single non-zero entry of a SparseVector
type Feature struct {
	Index int
	Value float64
}

// SparseVector holds non-zero features ordered by index
type SparseVector []Feature

// Dot returns the inner product with a dense weight vector.
func (v SparseVector) Dot(weights []float64) float64 {
	var sum float64
	for _, f := range v {
		sum += f.Value * weights[f.Index]
	}
	return sum
}

// Vectorizer turns raw text into TF-IDF weighted term vectors using a fitted vocabulary.
// Field names follow the fitted attributes of a TF-IDF vectorizer so that exported
// models can be loaded without translation.
type Vectorizer struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	NgramRange   [2]int         `json:"ngram_range"`
	Lowercase    bool           `json:"lowercase"`
	StripAccents string         `json:"strip_accents,omitempty"`
	Norm         string         `json:"norm"`
	SublinearTF  bool           `json:"sublinear_tf"`
}

// Validate checks that the fitted state is internally consistent.
func (v *Vectorizer) Validate() error {
	if v == nil {
		return errors.New("vectorizer is missing")
	}
	if len(v.Vocabulary) == 0 {
		return errors.New("vectorizer vocabulary is empty")
	}
	if len(v.IDF) == 0 {
		return errors.New("vectorizer idf weights are empty")
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("vocabulary term %q has index %d outside [0, %d)", term, idx, len(v.IDF))
		}
	}
	minN, maxN := v.NgramRange[0], v.NgramRange[1]
	if minN < 1 || maxN < minN {
		return fmt.Errorf("invalid ngram range (%d, %d)", minN, maxN)
	}
	switch v.Norm {
	case NormL2, NormL1, NormNone:
	default:
		return fmt.Errorf("unsupported norm %q", v.Norm)
	}
	switch v.StripAccents {
	case StripAccentsNone, StripAccentsUnicode, StripAccentsASCII:
	default:
		return fmt.Errorf("unsupported strip_accents %q", v.StripAccents)
	}
	return nil
}

// Features returns the number of columns of the term vectors.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// Transform computes the weighted, normalized term vector of a document.
// Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range v.Analyze(doc) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}

	vec := make(SparseVector, 0, len(counts))
	for idx, tf := range counts {
		if v.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		vec = append(vec, Feature{Index: idx, Value: tf * v.IDF[idx]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Index < vec[j].Index })

	normalize(vec, v.Norm)
	return vec
}

// Analyze returns the n-gram terms of a document in extraction order.
func (v *Vectorizer) Analyze(doc string) []string {
	return wordNgrams(tokenize(v.preprocess(doc)), v.NgramRange[0], v.NgramRange[1])
}

func (v *Vectorizer) preprocess(doc string) string {
	if v.Lowercase {
		doc = cases.Lower(language.Und).String(doc)
	}
	switch v.StripAccents {
	case StripAccentsUnicode:
		doc = stripAccentsUnicode(doc)
	case StripAccentsASCII:
		doc = stripAccentsASCII(doc)
	}
	return doc
}

func stripAccentsUnicode(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func stripAccentsASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// tokenize splits text into maximal runs of word characters, keeping runs of at
// least two characters.
func tokenize(doc string) []string {
	var tokens []string
	start, length := -1, 0
	for i, r := range doc {
		if isWordRune(r) {
			if start < 0 {
				start, length = i, 0
			}
			length++
			continue
		}
		if start >= 0 && length >= 2 {
			tokens = append(tokens, doc[start:i])
		}
		start = -1
	}
	if start >= 0 && length >= 2 {
		tokens = append(tokens, doc[start:])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func wordNgrams(tokens []string, minN, maxN int) []string {
	if maxN == 1 && minN == 1 {
		return tokens
	}

	var terms []string
	if minN == 1 {
		terms = append(terms, tokens...)
		minN++
	}
	for n := minN; n <= maxN && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func normalize(vec SparseVector, mode string) {
	var total float64
	switch mode {
	case NormL2:
		for _, f := range vec {
			total += f.Value * f.Value
		}
		total = math.Sqrt(total)
	case NormL1:
		for _, f := range vec {
			total += math.Abs(f.Value)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range vec {
		vec[i].Value /= total
	}
}
