package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/usecase"
)

// Fixed client-facing messages
const (
	MsgInternal         = "Internal server error"
	MsgEndpointNotFound = "Endpoint not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// Anything unrecognised becomes a 500 whose message never carries the cause.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrPredictionNotFound):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       CodeNotFound,
			Message:    "Prediction not found",
		}
	case errors.Is(err, usecase.ErrHistoryDisabled):
		return ErrorResponse{
			StatusCode: http.StatusNotFound,
			Code:       CodeNotFound,
			Message:    "Prediction history is disabled",
		}
	case errors.Is(err, usecase.ErrInvalidRequest):
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       CodeInvalidRequest,
			Message:    "Invalid request",
		}
	default:
		return ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Code:       CodeInternal,
			Message:    MsgInternal,
		}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
// The error is attached to the context so the request logger records the cause.
func HandleUsecaseError(c *gin.Context, err error) {
	_ = c.Error(err)
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleInvalidUUID handles an invalid UUID parameter error.
func HandleInvalidUUID(c *gin.Context, paramName string) {
	respondError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid "+paramName)
}

// HandleInvalidRequest handles a generic invalid request error.
func HandleInvalidRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// NotFound handles requests to unknown routes
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, CodeNotFound, MsgEndpointNotFound)
}

// MethodNotAllowed handles known routes requested with the wrong method
func MethodNotAllowed(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed, CodeMethodNotAllowed, MsgMethodNotAllowed)
}
