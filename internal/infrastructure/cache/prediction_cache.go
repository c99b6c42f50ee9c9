package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/repository"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
)

type predictionCache struct {
	cache     Cache
	namespace string
}

// NewPredictionCache stores classification results in c keyed by text hash.
// Entries written under one namespace are invisible to every other, so a
// shared Redis never serves results produced by a different model.
func NewPredictionCache(c Cache, namespace string) repository.PredictionCache {
	return &predictionCache{cache: c, namespace: namespace}
}

func (p *predictionCache) Get(ctx context.Context, text string) (*service.ClassificationResult, error) {
	val, found, err := p.cache.Get(ctx, Key(p.namespace, text))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var result service.ClassificationResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached prediction: %w", err)
	}
	return &result, nil
}

func (p *predictionCache) Set(ctx context.Context, text string, result *service.ClassificationResult) error {
	val, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode prediction: %w", err)
	}
	return p.cache.Set(ctx, Key(p.namespace, text), val, 0)
}
