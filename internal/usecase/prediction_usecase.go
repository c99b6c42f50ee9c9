package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/entity"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/repository"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/metrics"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/infrastructure/requestctx"
)

// MaxBatchSize is the largest number of texts accepted by PredictBatch
const MaxBatchSize = 100

// Error definitions for prediction usecase
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrHistoryDisabled    = errors.New("prediction history is disabled")
)

// PredictionOutput represents the result of a single prediction
type PredictionOutput struct {
	Prediction  string   `json:"prediction"`
	IsReal      bool     `json:"is_real"`
	Confidence  *float64 `json:"confidence"`
	TextPreview string   `json:"text_preview"`
}

// BatchItemOutput represents one entry of a batch prediction
type BatchItemOutput struct {
	Prediction string   `json:"prediction"`
	IsReal     bool     `json:"is_real"`
	Confidence *float64 `json:"confidence"`
}

// BatchPredictionOutput represents the result of a batch prediction
type BatchPredictionOutput struct {
	Predictions []*BatchItemOutput `json:"predictions"`
	Count       int                `json:"count"`
}

// HistoryOutput represents a stored prediction
type HistoryOutput struct {
	ID          uuid.UUID `json:"id"`
	RequestID   string    `json:"request_id"`
	Prediction  string    `json:"prediction"`
	IsReal      bool      `json:"is_real"`
	Confidence  *float64  `json:"confidence"`
	TextPreview string    `json:"text_preview"`
	Source      string    `json:"source"`
	CreatedAt   string    `json:"created_at"`
}

// HistoryListOutput represents paginated prediction history
type HistoryListOutput struct {
	Predictions []*HistoryOutput `json:"predictions"`
	Total       int64            `json:"total"`
	Limit       int              `json:"limit"`
	Offset      int              `json:"offset"`
	HasMore     bool             `json:"has_more"`
}

// PredictionUsecase defines the interface for prediction business logic
type PredictionUsecase interface {
	Predict(ctx context.Context, text string) (*PredictionOutput, error)
	PredictBatch(ctx context.Context, texts []string) (*BatchPredictionOutput, error)
	ListHistory(ctx context.Context, limit, offset int) (*HistoryListOutput, error)
	GetHistory(ctx context.Context, id uuid.UUID) (*HistoryOutput, error)
	HistoryEnabled() bool
}

type predictionUsecase struct {
	classifier service.Classifier
	cache      repository.PredictionCache
	repo       repository.PredictionRepository
	logger     *zap.Logger
}

// NewPredictionUsecase creates a new prediction usecase. cache and repo may be
// nil to disable result caching and prediction history.
func NewPredictionUsecase(
	classifier service.Classifier,
	cache repository.PredictionCache,
	repo repository.PredictionRepository,
	logger *zap.Logger,
) PredictionUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &predictionUsecase{
		classifier: classifier,
		cache:      cache,
		repo:       repo,
		logger:     logger,
	}
}

func (u *predictionUsecase) Predict(ctx context.Context, text string) (*PredictionOutput, error) {
	p, err := u.predict(ctx, text, entity.PredictionSourceSingle)
	if err != nil {
		return nil, err
	}
	u.record(ctx, p, entity.PredictionSourceSingle)
	return toPredictionOutput(p), nil
}

func (u *predictionUsecase) PredictBatch(ctx context.Context, texts []string) (*BatchPredictionOutput, error) {
	if len(texts) > MaxBatchSize {
		return nil, fmt.Errorf("%w: at most %d texts per batch", ErrInvalidRequest, MaxBatchSize)
	}

	items := make([]*BatchItemOutput, 0, len(texts))
	predictions := make([]*entity.Prediction, 0, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := u.predict(ctx, text, entity.PredictionSourceBatch)
		if err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}
		items = append(items, toBatchItemOutput(p))
		predictions = append(predictions, p)
	}

	// History is written only once every item succeeded
	u.recordBatch(ctx, predictions)

	return &BatchPredictionOutput{
		Predictions: items,
		Count:       len(items),
	}, nil
}

func (u *predictionUsecase) ListHistory(ctx context.Context, limit, offset int) (*HistoryListOutput, error) {
	if u.repo == nil {
		return nil, ErrHistoryDisabled
	}

	records, total, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	outputs := make([]*HistoryOutput, len(records))
	for i, r := range records {
		outputs[i] = toHistoryOutput(r)
	}

	return &HistoryListOutput{
		Predictions: outputs,
		Total:       total,
		Limit:       limit,
		Offset:      offset,
		HasMore:     int64(offset+len(records)) < total,
	}, nil
}

func (u *predictionUsecase) GetHistory(ctx context.Context, id uuid.UUID) (*HistoryOutput, error) {
	if u.repo == nil {
		return nil, ErrHistoryDisabled
	}

	record, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrPredictionNotFound
	}

	return toHistoryOutput(record), nil
}

func (u *predictionUsecase) HistoryEnabled() bool {
	return u.repo != nil
}

func (u *predictionUsecase) predict(ctx context.Context, text string, source entity.PredictionSource) (*entity.Prediction, error) {
	requestID := requestctx.ID(ctx)

	result := u.lookup(ctx, text, requestID)
	if result == nil {
		var err error
		result, err = u.classify(ctx, text, requestID)
		if err != nil {
			return nil, err
		}
		u.store(ctx, text, result, requestID)
	}

	label, err := entity.ParseLabel(result.Label)
	if err != nil {
		return nil, err
	}

	p := entity.NewPrediction(text, label, result.Confidence)
	metrics.PredictionsTotal.WithLabelValues(string(p.Label), string(source)).Inc()

	return p, nil
}

func (u *predictionUsecase) classify(ctx context.Context, text, requestID string) (*service.ClassificationResult, error) {
	start := time.Now()
	result, err := u.classifier.Classify(ctx, text, requestID)
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ClassificationErrorsTotal.Inc()
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	return result, nil
}

// lookup returns the cached result for text, or nil on a miss or cache failure
func (u *predictionUsecase) lookup(ctx context.Context, text, requestID string) *service.ClassificationResult {
	if u.cache == nil {
		return nil
	}

	result, err := u.cache.Get(ctx, text)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheError).Inc()
		u.logger.Warn("prediction cache lookup failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil
	case result == nil:
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheMiss).Inc()
		return nil
	default:
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheHit).Inc()
		return result
	}
}

func (u *predictionUsecase) store(ctx context.Context, text string, result *service.ClassificationResult, requestID string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Set(ctx, text, result); err != nil {
		u.logger.Warn("prediction cache store failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (u *predictionUsecase) record(ctx context.Context, p *entity.Prediction, source entity.PredictionSource) {
	if u.repo == nil {
		return
	}
	requestID := requestctx.ID(ctx)
	record := entity.NewPredictionRecord(p, source, requestID)
	if err := u.repo.Create(ctx, record); err != nil {
		u.logger.Warn("failed to record prediction",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (u *predictionUsecase) recordBatch(ctx context.Context, predictions []*entity.Prediction) {
	if u.repo == nil || len(predictions) == 0 {
		return
	}
	requestID := requestctx.ID(ctx)
	records := make([]*entity.PredictionRecord, len(predictions))
	for i, p := range predictions {
		records[i] = entity.NewPredictionRecord(p, entity.PredictionSourceBatch, requestID)
	}
	if err := u.repo.CreateBatch(ctx, records); err != nil {
		u.logger.Warn("failed to record batch predictions",
			zap.String("request_id", requestID),
			zap.Int("count", len(records)),
			zap.Error(err),
		)
	}
}

func toPredictionOutput(p *entity.Prediction) *PredictionOutput {
	return &PredictionOutput{
		Prediction:  string(p.Label),
		IsReal:      p.IsReal,
		Confidence:  p.Confidence,
		TextPreview: p.TextPreview,
	}
}

func toBatchItemOutput(p *entity.Prediction) *BatchItemOutput {
	return &BatchItemOutput{
		Prediction: string(p.Label),
		IsReal:     p.IsReal,
		Confidence: p.Confidence,
	}
}

func toHistoryOutput(r *entity.PredictionRecord) *HistoryOutput {
	return &HistoryOutput{
		ID:          r.ID,
		RequestID:   r.RequestID,
		Prediction:  string(r.Label),
		IsReal:      r.IsReal,
		Confidence:  r.Confidence,
		TextPreview: r.TextPreview,
		Source:      string(r.Source),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}
