// Package llm wraps the Anthropic Messages API behind the two calls
// this tool makes: the granularity gate and the business-value
// assessment. Every call is a single attempt, no retry, no streaming.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/danielolaszy/bva/internal/config"
	"github.com/danielolaszy/bva/internal/logging"
)

const (
	// granularityMaxTokens bounds the gate response; it only needs Yes/No.
	granularityMaxTokens = 16

	// assessmentMaxTokens bounds the structured assessment response.
	assessmentMaxTokens = 1024
)

// Client handles text-generation requests for the assessment workflow.
type Client struct {
	client *anthropic.Client
	model  string
}

// NewClient creates a new Anthropic client using configuration from
// environment variables.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.ValidateAnthropicConfig(cfg); err != nil {
		return nil, err
	}

	logging.Debug("anthropic configuration",
		"model", cfg.Anthropic.Model,
		"api_key", logging.MaskSensitive(cfg.Anthropic.APIKey))

	client := anthropic.NewClient(option.WithAPIKey(cfg.Anthropic.APIKey))

	return &Client{
		client: &client,
		model:  cfg.Anthropic.Model,
	}, nil
}

// CheckGranularity asks the model whether a story is granular. The
// verdict is true only for a response starting with "yes"; failures are
// returned alongside a false verdict so the caller can surface them
// while still treating the story as not granular.
func (c *Client) CheckGranularity(ctx context.Context, userStory string) (bool, error) {
	prompt := fmt.Sprintf(granularityPrompt, userStory)

	text, err := c.complete(ctx, prompt, granularityMaxTokens)
	if err != nil {
		return false, err
	}

	return granularVerdict(text), nil
}

// granularVerdict interprets the gate response. Only a trimmed,
// lower-cased response starting with "yes" counts as granular.
func granularVerdict(text string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), "yes")
}

// AssessBusinessValue asks the model for a business-value assessment of
// a story, with optional free-text context. Returns the raw response
// text unmodified, or an empty string plus the error on failure.
func (c *Client) AssessBusinessValue(ctx context.Context, userStory string, extraContext string) (string, error) {
	prompt := fmt.Sprintf(businessValuePrompt, userStory, extraContext)

	text, err := c.complete(ctx, prompt, assessmentMaxTokens)
	if err != nil {
		return "", err
	}

	return text, nil
}

// complete issues one Messages API call and concatenates the text
// blocks of the response.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("anthropic client not initialized")
	}

	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %v", err)
	}

	var text string
	for _, block := range response.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}

	logging.Debug("anthropic response",
		"model", c.model,
		"input_tokens", response.Usage.InputTokens,
		"output_tokens", response.Usage.OutputTokens)

	return text, nil
}
