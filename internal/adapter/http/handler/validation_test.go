package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredictRequest(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedText string
		expectedKind ValidationKind
		expectedMsg  string
	}{
		{name: "valid", body: `{"text": "hello world"}`, expectedText: "hello world"},
		{name: "trims whitespace", body: `{"text": "  hello \n"}`, expectedText: "hello"},
		{name: "extra fields ignored", body: `{"text": "hi", "lang": "en"}`, expectedText: "hi"},
		{name: "empty body", body: ``, expectedKind: ValidationMissingField, expectedMsg: MsgMissingText},
		{name: "invalid json", body: `{"text":`, expectedKind: ValidationMissingField, expectedMsg: MsgMissingText},
		{name: "empty object", body: `{}`, expectedKind: ValidationMissingField, expectedMsg: MsgMissingText},
		{name: "json array", body: `["text"]`, expectedKind: ValidationMissingField, expectedMsg: MsgMissingText},
		{name: "json null", body: `null`, expectedKind: ValidationMissingField, expectedMsg: MsgMissingText},
		{name: "missing text", body: `{"content": "hi"}`, expectedKind: ValidationMissingField, expectedMsg: MsgMissingText},
		{name: "text is number", body: `{"text": 42}`, expectedKind: ValidationWrongType, expectedMsg: MsgTextType},
		{name: "text is null", body: `{"text": null}`, expectedKind: ValidationWrongType, expectedMsg: MsgTextType},
		{name: "empty text", body: `{"text": ""}`, expectedKind: ValidationEmpty, expectedMsg: MsgEmptyText},
		{name: "whitespace text", body: `{"text": "   \t\n"}`, expectedKind: ValidationEmpty, expectedMsg: MsgEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, verr := ParsePredictRequest(strings.NewReader(tt.body))

			if tt.expectedMsg == "" {
				require.Nil(t, verr)
				assert.Equal(t, tt.expectedText, text)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.expectedKind, verr.Kind)
			assert.Equal(t, tt.expectedMsg, verr.Message)
			assert.Equal(t, tt.expectedMsg, verr.Error())
		})
	}
}

func TestParseBatchPredictRequest(t *testing.T) {
	tooMany := `{"texts": [` + strings.TrimSuffix(strings.Repeat(`"a",`, 101), ",") + `]}`
	exactlyMax := `{"texts": [` + strings.TrimSuffix(strings.Repeat(`"a",`, 100), ",") + `]}`

	tests := []struct {
		name          string
		body          string
		expectedTexts []string
		expectedKind  ValidationKind
		expectedMsg   string
	}{
		{name: "valid", body: `{"texts": ["one", "two"]}`, expectedTexts: []string{"one", "two"}},
		{name: "keeps whitespace and empty", body: `{"texts": [" a ", ""]}`, expectedTexts: []string{" a ", ""}},
		{name: "empty list", body: `{"texts": []}`, expectedTexts: []string{}},
		{name: "empty body", body: ``, expectedKind: ValidationMissingField, expectedMsg: MsgMissingTexts},
		{name: "missing texts", body: `{"text": "one"}`, expectedKind: ValidationMissingField, expectedMsg: MsgMissingTexts},
		{name: "texts is string", body: `{"texts": "one"}`, expectedKind: ValidationWrongType, expectedMsg: MsgTextsType},
		{name: "texts is object", body: `{"texts": {"a": "b"}}`, expectedKind: ValidationWrongType, expectedMsg: MsgTextsType},
		{name: "texts is null", body: `{"texts": null}`, expectedKind: ValidationWrongType, expectedMsg: MsgTextsType},
		{name: "too many", body: tooMany, expectedKind: ValidationTooLarge, expectedMsg: "Maximum 100 texts per request"},
		{name: "non-string item", body: `{"texts": ["one", 2]}`, expectedKind: ValidationWrongType, expectedMsg: MsgTextsItem},
		{name: "null item", body: `{"texts": [null]}`, expectedKind: ValidationWrongType, expectedMsg: MsgTextsItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts, verr := ParseBatchPredictRequest(strings.NewReader(tt.body))

			if tt.expectedMsg == "" {
				require.Nil(t, verr)
				assert.Equal(t, tt.expectedTexts, texts)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.expectedKind, verr.Kind)
			assert.Equal(t, tt.expectedMsg, verr.Message)
		})
	}

	t.Run("exactly the maximum", func(t *testing.T) {
		texts, verr := ParseBatchPredictRequest(strings.NewReader(exactlyMax))

		require.Nil(t, verr)
		assert.Len(t, texts, 100)
	})
}
