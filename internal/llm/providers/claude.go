package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"talentlens/internal/config"
	"talentlens/internal/logging"
	"talentlens/pkg/models"
)

// ClaudeProvider implements the LLM provider interface using Anthropic's
// Claude. Like the OpenAI provider, the client is built per call from the
// request credential. System messages are lifted into the Anthropic system
// block; everything else travels as user turns.
type ClaudeProvider struct {
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	return &ClaudeProvider{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends a completion request to Claude and returns the raw text of
// the reply.
func (cp *ClaudeProvider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = cp.config.LLM.APIKey
	}
	if apiKey == "" {
		return "", fmt.Errorf("no API key supplied for Claude request")
	}

	model := req.Model
	if model == "" {
		model = cp.config.LLM.Model
	}

	startTime := time.Now()

	var system []anthropic.TextBlockParam
	var messages []anthropic.MessageParam
	for _, m := range req.Messages {
		if m.Role == models.RoleSystem {
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
			continue
		}
		messages = append(messages, anthropic.MessageParam{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: m.Content},
			}},
			Role: anthropic.MessageParamRoleUser,
		})
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	response, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(float64(req.Temperature)),
		System:      system,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	cp.logger.Debug("Claude completion finished", map[string]interface{}{
		"model":           model,
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return responseText, nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
