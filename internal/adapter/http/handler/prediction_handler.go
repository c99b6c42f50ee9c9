package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/usecase"
)

// PredictionHandler handles prediction HTTP requests
type PredictionHandler struct {
	predictionUC usecase.PredictionUsecase
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionUC usecase.PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{predictionUC: predictionUC}
}

// Predict handles POST /api/predict
func (h *PredictionHandler) Predict(c *gin.Context) {
	text, verr := ParsePredictRequest(c.Request.Body)
	if verr != nil {
		HandleInvalidRequest(c, verr.Message)
		return
	}

	output, err := h.predictionUC.Predict(c.Request.Context(), text)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// BatchPredict handles POST /api/batch-predict
func (h *PredictionHandler) BatchPredict(c *gin.Context) {
	texts, verr := ParseBatchPredictRequest(c.Request.Body)
	if verr != nil {
		HandleInvalidRequest(c, verr.Message)
		return
	}

	output, err := h.predictionUC.PredictBatch(c.Request.Context(), texts)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// ListPredictions handles GET /api/predictions
func (h *PredictionHandler) ListPredictions(c *gin.Context) {
	pagination := ParsePagination(c)

	output, err := h.predictionUC.ListHistory(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}

// GetPrediction handles GET /api/predictions/:id
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "prediction id")
		return
	}

	output, err := h.predictionUC.GetHistory(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, output)
}
