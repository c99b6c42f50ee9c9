package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/entity"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
)

// PredictionRepository defines the interface for prediction history storage
type PredictionRepository interface {
	// Create stores a prediction record
	Create(ctx context.Context, record *entity.PredictionRecord) error

	// CreateBatch stores all records or none of them
	CreateBatch(ctx context.Context, records []*entity.PredictionRecord) error

	// GetByID retrieves a record by its ID, returning nil when absent
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PredictionRecord, error)

	// List retrieves records newest first with pagination
	List(ctx context.Context, limit, offset int) ([]*entity.PredictionRecord, int64, error)
}

// PredictionCache stores classification results keyed by input text
type PredictionCache interface {
	// Get returns the cached result, or nil when there is none
	Get(ctx context.Context, text string) (*service.ClassificationResult, error)

	// Set caches result for text
	Set(ctx context.Context, text string, result *service.ClassificationResult) error
}
