package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"fitratio/internal/models"
	"fitratio/internal/store"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const defaultDigestWindow = 100

// TaskProcessor holds dependencies for our task handlers
type TaskProcessor struct {
	Store  *store.Comparisons
	logger *zap.SugaredLogger
}

// NewTaskProcessor creates a new TaskProcessor
func NewTaskProcessor(comparisons *store.Comparisons, logger *zap.SugaredLogger) *TaskProcessor {
	return &TaskProcessor{
		Store:  comparisons,
		logger: logger,
	}
}

// HandleComparisonDigestTask summarizes the most recent comparisons into the
// log: how many rows the window holds, how many carried a numeric result, and
// the mean result among those.
func (p *TaskProcessor) HandleComparisonDigestTask(ctx context.Context, t *asynq.Task) error {
	var payload ComparisonDigestPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	window := defaultDigestWindow
	if payload.Window != nil && *payload.Window > 0 {
		window = *payload.Window
	}

	summaries, err := p.Store.ListRecent(ctx, window)
	if err != nil {
		p.logger.Errorw("failed to load comparisons for digest", "error", err)
		return err
	}

	withResult, meanResult := digest(summaries)

	p.logger.Infow("comparison digest",
		"window", len(summaries),
		"with_result", withResult,
		"mean_result", meanResult,
	)

	return nil
}

func digest(summaries []models.ComparisonSummary) (int, float64) {
	withResult := 0
	sum := 0.0
	for _, summary := range summaries {
		if summary.ResultValue == nil {
			continue
		}
		withResult++
		sum += *summary.ResultValue
	}

	if withResult == 0 {
		return 0, 0
	}

	return withResult, sum / float64(withResult)
}
