package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/usecase"
)

// ValidationKind classifies why a request body was rejected
type ValidationKind string

const (
	ValidationMissingField ValidationKind = "missing_field"
	ValidationWrongType    ValidationKind = "wrong_type"
	ValidationEmpty        ValidationKind = "empty"
	ValidationTooLarge     ValidationKind = "too_large"
)

// Validation messages
const (
	MsgMissingText  = `Missing "text" in request body`
	MsgEmptyText    = "Text cannot be empty"
	MsgTextType     = `"text" must be a string`
	MsgMissingTexts = `Missing "texts" in request body`
	MsgTextsType    = `"texts" must be a list`
	MsgTextsItem    = `"texts" must contain only strings`
)

// MsgTooManyTexts is returned when a batch exceeds usecase.MaxBatchSize
var MsgTooManyTexts = fmt.Sprintf("Maximum %d texts per request", usecase.MaxBatchSize)

// maxBodyBytes bounds the request body read by the parsers
const maxBodyBytes = 10 << 20

// ValidationError is the result of a rejected request body
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// ParsePredictRequest reads {"text": "..."} and returns the trimmed text
func ParsePredictRequest(body io.Reader) (string, *ValidationError) {
	fields, ok := decodeObject(body)
	if !ok {
		return "", invalid(ValidationMissingField, MsgMissingText)
	}

	raw, ok := fields["text"]
	if !ok {
		return "", invalid(ValidationMissingField, MsgMissingText)
	}

	var text string
	if isNull(raw) || json.Unmarshal(raw, &text) != nil {
		return "", invalid(ValidationWrongType, MsgTextType)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", invalid(ValidationEmpty, MsgEmptyText)
	}

	return text, nil
}

// ParseBatchPredictRequest reads {"texts": ["...", ...]}. Texts are returned
// untrimmed and may be empty.
func ParseBatchPredictRequest(body io.Reader) ([]string, *ValidationError) {
	fields, ok := decodeObject(body)
	if !ok {
		return nil, invalid(ValidationMissingField, MsgMissingTexts)
	}

	raw, ok := fields["texts"]
	if !ok {
		return nil, invalid(ValidationMissingField, MsgMissingTexts)
	}

	var items []json.RawMessage
	if isNull(raw) || json.Unmarshal(raw, &items) != nil {
		return nil, invalid(ValidationWrongType, MsgTextsType)
	}

	if len(items) > usecase.MaxBatchSize {
		return nil, invalid(ValidationTooLarge, MsgTooManyTexts)
	}

	texts := make([]string, len(items))
	for i, item := range items {
		if isNull(item) || json.Unmarshal(item, &texts[i]) != nil {
			return nil, invalid(ValidationWrongType, MsgTextsItem)
		}
	}

	return texts, nil
}

// decodeObject decodes a non-empty JSON object. Anything else, including an
// empty object, reports false.
func decodeObject(body io.Reader) (map[string]json.RawMessage, bool) {
	if body == nil {
		return nil, false
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, false
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
		return nil, false
	}
	return fields, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
