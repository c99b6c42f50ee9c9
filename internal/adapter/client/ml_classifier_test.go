package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/classifier"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/http/router"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/ml/mltest"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/usecase"
)

func TestMLClassifier_Classify(t *testing.T) {
	t.Run("passes label and confidence through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/batch-predict", r.URL.Path)
			assert.Equal(t, "POST", r.Method)

			confidence := 1.7
			resp := BatchPredictResponse{
				Predictions: []BatchItem{{Prediction: "fake", IsReal: false, Confidence: &confidence}},
				Count:       1,
			}
			json.NewEncoder(w).Encode(resp)
		}))
		defer server.Close()

		classifier := NewMLClassifier(NewMLClient(server.URL, 5*time.Second))

		result, err := classifier.Classify(context.Background(), "moon landing", "test-request-id")

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "fake", result.Label)
		assert.Equal(t, 1.7, *result.Confidence)
	})

	t.Run("server error returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Internal server error"}`))
		}))
		defer server.Close()

		classifier := NewMLClassifier(NewMLClient(server.URL, 5*time.Second))

		result, err := classifier.Classify(context.Background(), "text", "test-request-id")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestMLClassifier_Ready(t *testing.T) {
	t.Run("healthy service is ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(HealthResponse{Status: "healthy", Message: "API is running"})
		}))
		defer server.Close()

		classifier := NewMLClassifier(NewMLClient(server.URL, 5*time.Second))

		assert.NoError(t, classifier.Ready(context.Background()))
	})

	t.Run("unexpected status is not ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(HealthResponse{Status: "degraded"})
		}))
		defer server.Close()

		classifier := NewMLClassifier(NewMLClient(server.URL, 5*time.Second))

		err := classifier.Ready(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not ready")
	})

	t.Run("unreachable service is not ready", func(t *testing.T) {
		classifier := NewMLClassifier(NewMLClient("http://localhost:99999", time.Second))

		assert.Error(t, classifier.Ready(context.Background()))
	})
}

func TestMLClassifier_AgainstPeerService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	local := usecase.NewPredictionUsecase(classifier.NewLocalClassifierFromModel(mltest.NewPipeline()), nil, nil, nil)
	peer := httptest.NewServer(router.Setup(router.Dependencies{PredictionUC: local}))
	defer peer.Close()

	remote := usecase.NewPredictionUsecase(NewMLClassifier(NewMLClient(peer.URL, 5*time.Second)), nil, nil, nil)
	texts := []string{"", "   ", "  moon landing  ", mltest.RealText, mltest.FakeText}
	ctx := context.Background()

	got, err := remote.PredictBatch(ctx, texts)
	require.NoError(t, err)
	want, err := local.PredictBatch(ctx, texts)
	require.NoError(t, err)

	require.Equal(t, len(texts), got.Count)
	for i := range texts {
		assert.Equal(t, want.Predictions[i].Prediction, got.Predictions[i].Prediction, "item %d", i)
		require.NotNil(t, got.Predictions[i].Confidence)
		assert.InDelta(t, *want.Predictions[i].Confidence, *got.Predictions[i].Confidence, 1e-12, "item %d", i)
	}
}
