package openai

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/nulzo/unified-router/internal/adapters/providers"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/core/ports"
	"github.com/nulzo/unified-router/internal/registry"
)

func init() {
	for _, p := range []domain.Provider{
		domain.Unified,
		domain.OpenAI,
		domain.XAI,
		domain.DIAL,
		domain.Custom,
		domain.OpenRouter,
	} {
		registry.Register(p, NewAdapter)
	}
}

// Adapter is a client for any endpoint speaking the OpenAI chat completions
// protocol. DIAL is served through its deployment-scoped variant.
type Adapter struct {
	opts ports.ClientOptions
}

func NewAdapter(opts ports.ClientOptions) (ports.Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = providers.DefaultBaseURL(opts.Provider)
	}
	base, err := providers.NormalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.Provider, err)
	}
	opts.BaseURL = base

	if opts.Model == "" {
		return nil, fmt.Errorf("%s: model is required", opts.Provider)
	}

	return &Adapter{opts: opts}, nil
}

func (a *Adapter) Provider() domain.Provider { return a.opts.Provider }
func (a *Adapter) BaseURL() string           { return a.opts.BaseURL }
func (a *Adapter) Model() string             { return a.opts.Model }

func (a *Adapter) ChatURL() string {
	if a.opts.Provider == domain.DIAL {
		return fmt.Sprintf("%s/openai/deployments/%s/chat/completions",
			a.opts.BaseURL, url.PathEscape(a.opts.Model))
	}
	return a.opts.BaseURL + "/chat/completions"
}

func (a *Adapter) Header() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if a.opts.APIKey == "" {
		return h
	}

	switch a.opts.Provider {
	case domain.DIAL:
		h.Set("Api-Key", a.opts.APIKey)
	default:
		h.Set("Authorization", "Bearer "+a.opts.APIKey)
	}
	return h
}
