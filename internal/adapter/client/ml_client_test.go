package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLClient_PredictBatch(t *testing.T) {
	t.Run("successful prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/batch-predict", r.URL.Path)
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "req-123", r.Header.Get("X-Request-ID"))

			var req BatchPredictRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			require.NoError(t, err)
			assert.Equal(t, []string{"  test text"}, req.Texts)

			confidence := 0.85
			resp := BatchPredictResponse{
				Predictions: []BatchItem{{Prediction: "real", IsReal: true, Confidence: &confidence}},
				Count:       1,
			}
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL+"/", 5*time.Second)
		result, err := client.PredictBatch(context.Background(), []string{"  test text"}, "req-123")

		require.NoError(t, err)
		require.Len(t, result.Predictions, 1)
		assert.Equal(t, "real", result.Predictions[0].Prediction)
		assert.True(t, result.Predictions[0].IsReal)
		require.NotNil(t, result.Predictions[0].Confidence)
		assert.Equal(t, 0.85, *result.Predictions[0].Confidence)
	})

	t.Run("null confidence", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"predictions":[{"prediction":"fake","is_real":false,"confidence":null}],"count":1}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		result, err := client.PredictBatch(context.Background(), []string{"x"}, "")

		require.NoError(t, err)
		assert.Nil(t, result.Predictions[0].Confidence)
	})

	t.Run("short response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte(`{"predictions":[],"count":0}`))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		_, err := client.PredictBatch(context.Background(), []string{"x"}, "")

		assert.ErrorContains(t, err, "0 predictions for 1 texts")
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, err := w.Write([]byte("internal error"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		_, err := client.PredictBatch(context.Background(), []string{"test"}, "")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, err := w.Write([]byte("not json"))
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		_, err := client.PredictBatch(context.Background(), []string{"test"}, "")

		assert.ErrorContains(t, err, "decode")
	})

	t.Run("connection error", func(t *testing.T) {
		client := NewMLClient("http://localhost:99999", 1*time.Second)
		_, err := client.PredictBatch(context.Background(), []string{"test"}, "")

		assert.Error(t, err)
	})
}

func TestMLClient_Health(t *testing.T) {
	t.Run("healthy service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			assert.Equal(t, "GET", r.Method)

			resp := HealthResponse{
				Status:  "healthy",
				Message: "API is running",
			}
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(resp)
			require.NoError(t, err)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		result, err := client.Health(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "healthy", result.Status)
		assert.Equal(t, "API is running", result.Message)
	})

	t.Run("unavailable service", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewMLClient(server.URL, 5*time.Second)
		_, err := client.Health(context.Background())

		assert.ErrorContains(t, err, "503")
	})
}
