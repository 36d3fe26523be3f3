package ports

import (
	"context"

	"github.com/nulzo/unified-router/internal/core/domain"
)

// ProviderStatus summarizes one provider in dispatch order.
type ProviderStatus struct {
	Provider  domain.Provider `json:"provider"`
	Priority  int             `json:"priority"`
	Enabled   bool            `json:"enabled"`
	BaseURL   string          `json:"base_url"`
	HasKey    bool            `json:"has_key"`
	Overrides int             `json:"overrides"`
}

// RouterService decides which provider serves a model.
type RouterService interface {
	// Route picks the first provider, in fixed dispatch order, that serves model.
	Route(ctx context.Context, model string) (*domain.Target, error)
	// Dispatch routes model, checks credentials and builds the provider client.
	Dispatch(ctx context.Context, model string) (Client, *domain.Target, error)
	Providers() []ProviderStatus
	ListModels(p domain.Provider) []domain.ModelDefinition
}
