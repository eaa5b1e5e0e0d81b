package providers

import (
	"context"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"talentlens/internal/config"
	"talentlens/internal/logging"
	"talentlens/pkg/models"
)

// OpenAIProvider implements the LLM provider interface using OpenAI's chat
// completions API. Clients are constructed per call from the credential in
// the request, so no API key is ever held as process state.
type OpenAIProvider struct {
	config *config.Config
	logger logging.Logger
}

// NewOpenAIProvider creates a new OpenAI provider instance
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	return &OpenAIProvider{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends a chat completion request to OpenAI and returns the raw text
// of the first choice.
func (op *OpenAIProvider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = op.config.LLM.APIKey
	}
	if apiKey == "" {
		return "", fmt.Errorf("no API key supplied for OpenAI request")
	}

	model := req.Model
	if model == "" {
		model = op.config.LLM.Model
	}

	startTime := time.Now()

	client := openai.NewClient(apiKey)
	response, err := client.CreateChatCompletion(ctx, chatCompletionRequest(model, req))
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	content := response.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("no text content in OpenAI response")
	}

	op.logger.Debug("OpenAI completion finished", map[string]interface{}{
		"model":           model,
		"processing_time": time.Since(startTime),
		"provider":        "openai",
	})

	return content, nil
}

// chatCompletionRequest builds the wire request. Temperature needs care: the
// library tags it omitempty, so a literal 0 would vanish from the JSON and the
// API would fall back to its default of 1. Tasks that need deterministic
// output set 0 on purpose, so zero is sent as the smallest nonzero float the
// field can carry, which the API treats as 0.
func chatCompletionRequest(model string, req models.CompletionRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: temperature,
	}
}

// GetProviderName returns the name of the LLM provider
func (op *OpenAIProvider) GetProviderName() string {
	return "openai"
}
