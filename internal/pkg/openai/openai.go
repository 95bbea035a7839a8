package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	defaultModel = shared.ChatModel("gpt-4.1-nano-2025-04-14")

	// deterministic-leaning settings: variance hurts more than creativity
	// helps for a ratio estimate
	defaultTemperature = 0.1
	maxOutputTokens    = 1024
)

var (
	// ErrMissingAPIKey is returned when OPENAI_API_KEY was not configured.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")
)

// RatioEstimator asks a model how many of item A fit inside item B.
type RatioEstimator interface {
	EstimateFit(ctx context.Context, itemA string, itemB string) (*Estimate, error)
}

// Estimator is a thin wrapper around the OpenAI chat completions client that
// requests a strict JSON-object answer for one item pair.
type Estimator struct {
	client *openai.Client
	model  shared.ChatModel
}

// NewEstimatorFromEnv builds an Estimator using the OPENAI_API_KEY env var.
func NewEstimatorFromEnv() (*Estimator, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return NewEstimator(apiKey), nil
}

func NewEstimator(apiKey string, opts ...option.RequestOption) *Estimator {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)
	return &Estimator{client: &client, model: defaultModel}
}

// EstimateFit sends one item pair to the model and returns the normalized
// estimate. A provider failure or an empty answer is an upstream error; output
// that is not parseable JSON fails with ErrInvalidResponse. A single attempt,
// no retry, no client-side timeout.
func (e *Estimator) EstimateFit(ctx context.Context, itemA string, itemB string) (*Estimate, error) {
	if e == nil || e.client == nil {
		return nil, errors.New("Estimator is not initialized")
	}

	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: e.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(itemA, itemB)),
		},
		Temperature: openai.Float(defaultTemperature),
		MaxTokens:   openai.Int(maxOutputTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("call OpenAI: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("model returned no choices")
	}

	output := strings.TrimSpace(completion.Choices[0].Message.Content)
	if output == "" {
		return nil, errors.New("model returned an empty response")
	}

	return ParseEstimate(output)
}
