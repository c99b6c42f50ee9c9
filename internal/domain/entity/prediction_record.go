package entity

import (
	"time"

	"github.com/google/uuid"
)

// PredictionSource identifies which endpoint produced a prediction
type PredictionSource string

const (
	PredictionSourceSingle PredictionSource = "single"
	PredictionSourceBatch  PredictionSource = "batch"
)

// PredictionRecord is a stored prediction
type PredictionRecord struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primary_key"`
	RequestID   string           `json:"request_id" gorm:"type:varchar(64);index"`
	Label       Label            `json:"prediction" gorm:"type:varchar(16);not null"`
	IsReal      bool             `json:"is_real" gorm:"not null"`
	Confidence  *float64         `json:"confidence"`
	TextPreview string           `json:"text_preview" gorm:"type:text;not null"`
	Source      PredictionSource `json:"source" gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for GORM
func (PredictionRecord) TableName() string {
	return "predictions"
}

// NewPredictionRecord creates a record for p
func NewPredictionRecord(p *Prediction, source PredictionSource, requestID string) *PredictionRecord {
	return &PredictionRecord{
		ID:          uuid.New(),
		RequestID:   requestID,
		Label:       p.Label,
		IsReal:      p.IsReal,
		Confidence:  p.Confidence,
		TextPreview: p.TextPreview,
		Source:      source,
	}
}
