package ports

import "github.com/nulzo/unified-router/internal/core/domain"

type ModelCatalog interface {
	// Lookup resolves a model name or alias served by p to its upstream name.
	Lookup(p domain.Provider, model string) (string, bool)

	// ListModels returns the models served by p, or all models when p is empty.
	ListModels(p domain.Provider) []domain.ModelDefinition
}
