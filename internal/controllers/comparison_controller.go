package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fitratio/internal/metrics"
	"fitratio/internal/models"
	"fitratio/internal/pkg/openai"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ComparisonStore is the persistence surface the controller needs. The
// concrete implementation lives in internal/store.
type ComparisonStore interface {
	Append(ctx context.Context, itemA string, itemB string, explanation string, resultValue *float64) (uint, error)
	ListRecent(ctx context.Context, limit int) ([]models.ComparisonSummary, error)
	GetByID(ctx context.Context, id uint) (*models.Comparison, error)
}

type ComparisonController struct {
	Store     ComparisonStore
	Estimator openai.RatioEstimator
	Logger    *zap.SugaredLogger
}

// Calculate handles one comparison request end to end: validate input, ask the
// model, normalize its answer, persist, respond. A persistence failure is
// logged and the computed result is still returned.
func (cc *ComparisonController) Calculate(c *gin.Context) {
	ctx := c.Request.Context()

	itemA := c.PostForm("item_a")
	itemB := c.PostForm("item_b")

	cc.Logger.Infow("received calculation request", "item_a", itemA, "item_b", itemB)

	if itemA == "" || itemB == "" {
		cc.Logger.Warnw("calculation request missing item A or item B")
		metrics.ComparisonsTotal.WithLabelValues("missing_field").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing item A or item B"})
		return
	}

	if cc.Estimator == nil {
		cc.Logger.Error("estimator unavailable: OPENAI_API_KEY is not set")
		metrics.ComparisonsTotal.WithLabelValues("configuration_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": openai.ErrMissingAPIKey.Error()})
		return
	}

	start := time.Now()
	estimate, err := cc.Estimator.EstimateFit(ctx, itemA, itemB)
	metrics.OpenAIRequestSeconds.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, openai.ErrInvalidResponse) {
			cc.Logger.Errorw("failed to decode JSON from AI response", "error", err)
			metrics.ComparisonsTotal.WithLabelValues("invalid_response").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI returned invalid JSON format."})
			return
		}

		cc.Logger.Errorw("OpenAI call failed", "error", err)
		metrics.ComparisonsTotal.WithLabelValues("upstream_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI calculation failed: " + err.Error()})
		return
	}

	cc.Logger.Infow("received estimate",
		"raw", estimate.Raw,
		"item_a_dimension", estimate.ItemADimension,
		"item_b_dimension", estimate.ItemBDimension,
		"result_value", estimate.ResultValue,
	)

	id, err := cc.Store.Append(ctx, itemA, itemB, estimate.Explanation, estimate.ResultValue)
	if err != nil {
		// Degraded write: the computed result still goes back to the caller.
		cc.Logger.Errorw("failed to save comparison", "error", err)
	} else {
		cc.Logger.Infow("saved comparison", "id", id)
	}

	metrics.ComparisonsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"item_a":       itemA,
		"item_b":       itemB,
		"explanation":  estimate.Explanation,
		"result_value": estimate.ResultValue,
	})
}

// GetHistory returns the most recent comparisons, newest first, without
// explanations.
func (cc *ComparisonController) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()
	limit := getLimitWithDefault(c, 20)

	summaries, err := cc.Store.ListRecent(ctx, limit)
	if err != nil {
		cc.Logger.Errorw("failed to get history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetHistoryItem returns the full record for one comparison id.
func (cc *ComparisonController) GetHistoryItem(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comparison not found"})
		return
	}

	comparison, err := cc.Store.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comparison not found"})
			return
		}

		cc.Logger.Errorw("failed to get comparison", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func getLimitWithDefault(c *gin.Context, defaultValue int) int {
	var err error
	limit := defaultValue
	if c.Query("limit") != "" {
		limit, err = strconv.Atoi(c.Query("limit"))
		if err != nil || limit <= 0 {
			return defaultValue
		}
	}
	return limit
}
