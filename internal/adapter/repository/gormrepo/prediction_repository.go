package gormrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/entity"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/repository"
)

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new prediction repository
func NewPredictionRepository(db *gorm.DB) repository.PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) Create(ctx context.Context, record *entity.PredictionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *predictionRepository) CreateBatch(ctx context.Context, records []*entity.PredictionRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(records).Error
	})
}

func (r *predictionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PredictionRecord, error) {
	var record entity.PredictionRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *predictionRepository) List(ctx context.Context, limit, offset int) ([]*entity.PredictionRecord, int64, error) {
	var records []*entity.PredictionRecord
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.PredictionRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
