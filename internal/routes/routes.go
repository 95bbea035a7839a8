package routes

import (
	"fitratio/internal/controllers"
	"fitratio/internal/pkg/openai"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires the comparison pipeline onto the HTTP surface. The
// estimator may be nil when no API key is configured; /calculate then answers
// with a configuration error while the history routes keep working.
func SetupRouter(comparisons controllers.ComparisonStore, estimator openai.RatioEstimator, logger *zap.SugaredLogger) *gin.Engine {
	comparisonController := controllers.ComparisonController{
		Store:     comparisons,
		Estimator: estimator,
		Logger:    logger,
	}

	// Set up Gin router
	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/calculate", comparisonController.Calculate)
	router.GET("/history", comparisonController.GetHistory)
	router.GET("/history/:id", comparisonController.GetHistoryItem)

	return router
}
