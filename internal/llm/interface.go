package llm

import (
	"context"

	"talentlens/pkg/models"
)

// Provider defines the interface for LLM completion providers
type Provider interface {
	// Complete sends a completion request and returns the raw text content of
	// the model's reply. The reply is expected, but not guaranteed, to be a
	// JSON document; coercion is the caller's concern.
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
