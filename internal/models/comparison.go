package models

import "time"

// Comparison is one stored "how many A fit in B" result. Rows are append-only:
// they are never updated or deleted after insert.
type Comparison struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ItemA       string    `gorm:"not null" json:"item_a"`
	ItemB       string    `gorm:"not null" json:"item_b"`
	Explanation string    `gorm:"not null" json:"explanation"`
	ResultValue *float64  `json:"result_value"`
	CreatedAt   time.Time `json:"created_at"`
}

// ComparisonSummary is the history listing shape. It deliberately omits the
// explanation text.
type ComparisonSummary struct {
	ID          uint     `json:"id"`
	ItemA       string   `json:"item_a"`
	ItemB       string   `json:"item_b"`
	ResultValue *float64 `json:"result_value"`
}
