package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// This file defines the "types" and "payloads" for our async tasks.

// Task type names
const (
	TypeTaskComparisonDigest = "task:comparison_digest"
)

// --- ComparisonDigest Task ---

// ComparisonDigestPayload is the data a digest job needs to run. Window is the
// number of most recent comparisons to summarize; nil means the default.
type ComparisonDigestPayload struct {
	Window *int `json:"window"`
}

// NewComparisonDigestTask creates a new task for asynq
func NewComparisonDigestTask(window *int) (*asynq.Task, error) {
	payload := ComparisonDigestPayload{
		Window: window,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeTaskComparisonDigest, payloadBytes), nil
}
