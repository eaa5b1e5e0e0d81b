package llm

import (
	"context"
	"fmt"
	"sync"

	"talentlens/internal/config"
	"talentlens/internal/logging"
	"talentlens/pkg/models"
)

// Manager manages LLM providers and their lifecycle
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	logger   logging.Logger
	mu       sync.RWMutex
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the LLM manager and creates the provider. No network
// health probe runs here: credentials arrive per request, so there is nothing
// to call the upstream API with at startup.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider
	m.logger.Info("LLM manager started successfully", map[string]interface{}{
		"provider": provider.GetProviderName(),
	})

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	return nil
}

// Complete sends a completion request through the configured provider.
func (m *Manager) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return "", fmt.Errorf("LLM manager not started or provider not available")
	}

	if req.Model == "" {
		req.Model = m.config.LLM.Model
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = m.config.LLM.MaxTokens
	}

	return provider.Complete(ctx, req)
}

// IsHealthy reports whether a provider is configured and available
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}
