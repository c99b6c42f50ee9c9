package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorBody is the JSON body of every error response
type ErrorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

// Error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeUnavailable      = "SERVICE_UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
)

func requestID(c *gin.Context) string {
	requestID := c.GetString("request_id")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return requestID
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{
		Error:     message,
		Code:      code,
		RequestID: requestID(c),
	})
}

// RespondError writes an error body and aborts the handler chain
func RespondError(c *gin.Context, status int, code, message string) {
	respondError(c, status, code, message)
	c.Abort()
}
