// Package generate turns accepted candidates into drafts via a
// text-generation provider.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	maxAttempts    = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 10 * time.Second
)

// Completion is one raw provider response plus reported token usage.
type Completion struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Provider is the text-generation boundary; it may fail or return text that
// is not parseable.
type Provider interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (*Completion, error)
}

// OpenAIClient implements Provider on the OpenAI chat completions API.
// Transport failures are retried with exponential backoff before the
// candidate is given up on.
type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
	logger *slog.Logger
}

var _ Provider = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey, model string, logger *slog.Logger) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModel(model),
		logger: logger.With(slog.String("component", "provider")),
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, system, user string, maxTokens int) (*Completion, error) {
	var comp *Completion
	var err error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		comp, err = c.doRequest(ctx, system, user, maxTokens)
		if err == nil {
			return comp, nil
		}

		if attempt == maxAttempts {
			break
		}

		backoff := calculateBackoff(attempt)
		c.logger.Warn("completion request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, err)
}

func (c *OpenAIClient) doRequest(ctx context.Context, system, user string, maxTokens int) (*Completion, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     c.model,
		MaxTokens: openai.Int(int64(maxTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	return &Completion{
		Text:         resp.Choices[0].Message.Content,
		Model:        resp.Model,
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
	}, nil
}

func calculateBackoff(attempt int) time.Duration {
	backoff := initialBackoff * time.Duration(1<<(attempt-1))
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	return backoff
}
