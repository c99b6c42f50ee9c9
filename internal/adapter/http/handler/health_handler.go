package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db         *gorm.DB
	redis      *redis.Client
	classifier service.ReadinessChecker
}

// NewHealthHandler creates a new health handler. Any dependency may be nil
// when it is not configured.
func NewHealthHandler(db *gorm.DB, redis *redis.Client, classifier service.ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		db:         db,
		redis:      redis,
		classifier: classifier,
	}
}

// HealthResponse represents the liveness response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ReadyStatus represents the readiness check response
type ReadyStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /api/health. It reports liveness only and never
// touches dependencies.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "API is running",
	})
}

// Ready handles GET /api/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	ready := true

	// Check database
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			components["database"] = "error: " + err.Error()
			ready = false
		} else if err := sqlDB.PingContext(ctx); err != nil {
			components["database"] = "error: " + err.Error()
			ready = false
		} else {
			components["database"] = "ok"
		}
	} else {
		components["database"] = "not configured"
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			ready = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	// Check remote classifier
	if h.classifier != nil {
		if err := h.classifier.Ready(ctx); err != nil {
			components["classifier"] = "error: " + err.Error()
			ready = false
		} else {
			components["classifier"] = "ok"
		}
	} else {
		components["classifier"] = "local"
	}

	status := "ready"
	httpStatus := http.StatusOK
	if !ready {
		status = "not ready"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, ReadyStatus{
		Status:     status,
		Components: components,
	})
}
