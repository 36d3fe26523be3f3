package google

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/nulzo/unified-router/internal/adapters/providers"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/core/ports"
	"github.com/nulzo/unified-router/internal/registry"
)

func init() {
	registry.Register(domain.Google, NewAdapter)
}

type Adapter struct {
	opts ports.ClientOptions
}

func NewAdapter(opts ports.ClientOptions) (ports.Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = providers.GoogleBaseURL
	}
	base, err := providers.NormalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("google: %w", err)
	}
	opts.BaseURL = base

	if opts.Model == "" {
		return nil, fmt.Errorf("google: model is required")
	}

	return &Adapter{opts: opts}, nil
}

func (a *Adapter) Provider() domain.Provider { return domain.Google }
func (a *Adapter) BaseURL() string           { return a.opts.BaseURL }
func (a *Adapter) Model() string             { return a.opts.Model }

// ChatURL targets generateContent. Model names may arrive with or without
// the "models/" resource prefix.
func (a *Adapter) ChatURL() string {
	model := strings.TrimPrefix(a.opts.Model, "models/")
	return fmt.Sprintf("%s/models/%s:generateContent", a.opts.BaseURL, url.PathEscape(model))
}

func (a *Adapter) Header() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if a.opts.APIKey != "" {
		h.Set("x-goog-api-key", a.opts.APIKey)
	}
	return h
}
