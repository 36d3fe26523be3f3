package factory

import (
	"fmt"

	"github.com/nulzo/unified-router/internal/core/ports"
	"github.com/nulzo/unified-router/internal/registry"

	// adapters register their constructors on import
	_ "github.com/nulzo/unified-router/internal/adapters/providers/google"
	_ "github.com/nulzo/unified-router/internal/adapters/providers/openai"
)

type ProviderFactory struct{}

func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

// Create builds the client registered for opts.Provider.
func (f *ProviderFactory) Create(opts ports.ClientOptions) (ports.Client, error) {
	construct, err := registry.Get(opts.Provider)
	if err != nil {
		return nil, fmt.Errorf("factory lookup failed for provider %s: %w", opts.Provider, err)
	}
	return construct(opts)
}
