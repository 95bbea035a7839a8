package store

import (
	"context"
	"fmt"

	"fitratio/internal/models"

	"gorm.io/gorm"
)

// Comparisons is the append-only comparison log. Every operation runs in its
// own statement scope; connections come and go through the gorm pool.
type Comparisons struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Comparisons {
	return &Comparisons{db: db}
}

// Init idempotently ensures the comparisons table exists. Safe to call on
// every process start.
func (s *Comparisons) Init() error {
	if err := s.db.AutoMigrate(&models.Comparison{}); err != nil {
		return fmt.Errorf("migrate comparisons table: %w", err)
	}
	return nil
}

// Append inserts one comparison row and returns the assigned id.
func (s *Comparisons) Append(ctx context.Context, itemA string, itemB string, explanation string, resultValue *float64) (uint, error) {
	comparison := models.Comparison{
		ItemA:       itemA,
		ItemB:       itemB,
		Explanation: explanation,
		ResultValue: resultValue,
	}

	if err := gorm.G[models.Comparison](s.db).Create(ctx, &comparison); err != nil {
		return 0, fmt.Errorf("insert comparison: %w", err)
	}

	return comparison.ID, nil
}

// ListRecent returns up to limit comparisons, most recent first. The summary
// shape excludes the explanation text.
func (s *Comparisons) ListRecent(ctx context.Context, limit int) ([]models.ComparisonSummary, error) {
	comparisons, err := gorm.G[models.Comparison](s.db).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}

	summaries := make([]models.ComparisonSummary, 0, len(comparisons))
	for _, comparison := range comparisons {
		summaries = append(summaries, models.ComparisonSummary{
			ID:          comparison.ID,
			ItemA:       comparison.ItemA,
			ItemB:       comparison.ItemB,
			ResultValue: comparison.ResultValue,
		})
	}

	return summaries, nil
}

// GetByID returns the full record for one id, or gorm.ErrRecordNotFound.
func (s *Comparisons) GetByID(ctx context.Context, id uint) (*models.Comparison, error) {
	comparison, err := gorm.G[models.Comparison](s.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}

	return &comparison, nil
}
