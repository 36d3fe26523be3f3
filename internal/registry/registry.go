package registry

import (
	"fmt"
	"sync"

	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/core/ports"
)

// Constructor builds a client for one provider from its resolved options.
type Constructor func(opts ports.ClientOptions) (ports.Client, error)

var (
	mu           sync.RWMutex
	constructors = make(map[domain.Provider]Constructor)
)

// Register makes a client constructor available for provider p.
// Adapters call it from init; registering a provider twice panics.
func Register(p domain.Provider, c Constructor) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := constructors[p]; exists {
		panic(fmt.Sprintf("client constructor for %s already registered", p))
	}
	constructors[p] = c
}

// Get retrieves the constructor registered for provider p.
func Get(p domain.Provider) (Constructor, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := constructors[p]
	if !ok {
		return nil, fmt.Errorf("client constructor not found for provider: %s", p)
	}
	return c, nil
}

// Providers lists the providers that have a constructor registered.
func Providers() []domain.Provider {
	mu.RLock()
	defer mu.RUnlock()
	var out []domain.Provider
	for _, p := range domain.DispatchOrder() {
		if _, ok := constructors[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
