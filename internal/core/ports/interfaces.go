package ports

import "github.com/nulzo/unified-router/internal/core/domain"

// EndpointResolver looks up per-model endpoint overrides.
type EndpointResolver interface {
	// Resolve returns the override for model under p, or false to use the provider default.
	Resolve(p domain.Provider, model string) (domain.Binding, bool)
	// Bindings lists every override configured for p.
	Bindings(p domain.Provider) []domain.Binding
}
