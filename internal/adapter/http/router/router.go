package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/http/handler"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/adapter/http/middleware"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/domain/service"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/usecase"
)

// Dependencies are the handles the router wires into handlers.
// DB, Redis and Readiness are optional.
type Dependencies struct {
	PredictionUC usecase.PredictionUsecase
	DB           *gorm.DB
	Redis        *redis.Client
	Readiness    service.ReadinessChecker
	AllowOrigins []string
	Logger       *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(handler.NotFound)
	router.NoMethod(handler.MethodNotAllowed)

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(deps.AllowOrigins))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis, deps.Readiness)
	predictionHandler := handler.NewPredictionHandler(deps.PredictionUC)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		api.POST("/predict", predictionHandler.Predict)
		api.POST("/batch-predict", predictionHandler.BatchPredict)

		if deps.PredictionUC.HistoryEnabled() {
			predictions := api.Group("/predictions")
			{
				predictions.GET("", predictionHandler.ListPredictions)
				predictions.GET("/:id", predictionHandler.GetPrediction)
			}
		}
	}

	return router
}
