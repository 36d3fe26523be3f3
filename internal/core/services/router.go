package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "github.com/nulzo/unified-router/internal/core/services"

// RouterConfig is the immutable input of a RouterService.
type RouterConfig struct {
	// UnifiedEnabled mirrors ENABLE_UNIFIED_OPENAI.
	UnifiedEnabled bool
	// Defaults holds the built-in endpoint and key of each provider.
	Defaults map[domain.Provider]domain.ProviderDefaults
	// CustomModels are extra model names the custom endpoint serves.
	CustomModels []string
}

type RouterService struct {
	resolver ports.EndpointResolver
	catalog  ports.ModelCatalog
	clients  ports.ClientFactory
	cfg      RouterConfig
	custom   map[string]bool
	logger   *zap.Logger
}

func NewRouterService(resolver ports.EndpointResolver, catalog ports.ModelCatalog, cfg RouterConfig, logger *zap.Logger) *RouterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Defaults == nil {
		cfg.Defaults = map[domain.Provider]domain.ProviderDefaults{}
	}

	custom := make(map[string]bool, len(cfg.CustomModels))
	for _, m := range cfg.CustomModels {
		if m = strings.TrimSpace(m); m != "" {
			custom[strings.ToLower(m)] = true
		}
	}

	return &RouterService{
		resolver: resolver,
		catalog:  catalog,
		cfg:      cfg,
		custom:   custom,
		logger:   logger,
	}
}

// SetClientFactory sets the factory Dispatch builds provider clients with.
// It must be called before the service handles requests.
func (s *RouterService) SetClientFactory(f ports.ClientFactory) {
	s.clients = f
}

// Route offers model to each provider in domain.DispatchOrder and returns
// the first that claims it.
func (s *RouterService) Route(ctx context.Context, model string) (*domain.Target, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "router.Route")
	defer span.End()
	span.SetAttributes(attribute.String("model", model))

	model = strings.TrimSpace(model)
	if model == "" {
		err := domain.BadRequestError("model name must not be empty")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	for _, p := range domain.DispatchOrder() {
		target, ok := s.claim(p, model)
		if !ok {
			continue
		}

		span.SetAttributes(
			attribute.String("provider", p.String()),
			attribute.Bool("overridden", target.Overridden),
		)
		s.logger.Debug("Routed model",
			zap.String("model", model),
			zap.String("provider", p.String()),
			zap.String("upstream_model", target.UpstreamModel),
			zap.String("base_url", target.BaseURL),
			zap.Bool("overridden", target.Overridden),
		)
		return target, nil
	}

	err := &domain.UnresolvedModelError{Model: model}
	span.SetStatus(codes.Error, err.Error())
	s.logger.Warn("No provider found for model", zap.String("model", model))
	return nil, err
}

// Dispatch routes model and builds its client. Credentials are checked here,
// at request time, rather than while routing.
func (s *RouterService) Dispatch(ctx context.Context, model string) (ports.Client, *domain.Target, error) {
	target, err := s.Route(ctx, model)
	if err != nil {
		return nil, nil, err
	}

	if err := target.Credentials(); err != nil {
		s.logger.Warn("Provider credentials missing",
			zap.String("provider", target.Provider.String()),
			zap.String("model", model),
		)
		return nil, target, err
	}

	if s.clients == nil {
		return nil, target, domain.InternalError("no client factory configured", nil)
	}

	client, err := s.clients.Create(ports.ClientOptions{
		Provider: target.Provider,
		Model:    target.UpstreamModel,
		BaseURL:  target.BaseURL,
		APIKey:   target.APIKey,
	})
	if errors.Is(err, domain.ErrInvalidEndpoint) {
		s.logger.Warn("Provider endpoint invalid",
			zap.String("provider", target.Provider.String()),
			zap.String("model", model),
			zap.String("base_url", target.BaseURL),
		)
		return nil, target, &domain.InvalidEndpointError{
			Provider: target.Provider,
			Model:    model,
			BaseURL:  target.BaseURL,
			Origin:   s.endpointOrigin(target),
			Err:      err,
		}
	}
	if err != nil {
		return nil, target, fmt.Errorf("create %s client: %w", target.Provider, err)
	}

	return client, target, nil
}

// claim decides whether provider p serves model.
func (s *RouterService) claim(p domain.Provider, model string) (*domain.Target, bool) {
	switch p {
	case domain.Unified:
		if !s.cfg.UnifiedEnabled {
			return nil, false
		}
		b, ok := s.resolver.Resolve(domain.Unified, model)
		if !ok {
			return nil, false
		}
		return s.target(p, model, model, &b), true

	case domain.Google, domain.OpenAI, domain.XAI, domain.DIAL:
		upstream, known := s.catalog.Lookup(p, model)
		b, overridden := s.resolver.Resolve(p, model)
		if !overridden && known && upstream != model {
			b, overridden = s.resolver.Resolve(p, upstream)
		}
		if !known {
			upstream = model
		}
		switch {
		case overridden:
			return s.target(p, model, upstream, &b), true
		case known && s.defaults(p).APIKey != "":
			return s.target(p, model, upstream, nil), true
		}
		return nil, false

	case domain.Custom:
		if s.defaults(p).BaseURL == "" || !s.servesCustom(model) {
			return nil, false
		}
		upstream, known := s.catalog.Lookup(p, model)
		if !known {
			upstream = model
		}
		return s.target(p, model, upstream, nil), true

	case domain.OpenRouter:
		if s.defaults(p).APIKey == "" {
			return nil, false
		}
		return s.target(p, model, model, nil), true
	}

	return nil, false
}

func (s *RouterService) servesCustom(model string) bool {
	if _, ok := s.catalog.Lookup(domain.Custom, model); ok {
		return true
	}
	if s.custom[strings.ToLower(model)] {
		return true
	}
	return isLocalModel(model)
}

// target merges an optional override onto the provider defaults. An override
// without a key keeps the provider's default key.
func (s *RouterService) target(p domain.Provider, model, upstream string, b *domain.Binding) *domain.Target {
	d := s.defaults(p)
	t := &domain.Target{
		Provider:      p,
		Model:         model,
		UpstreamModel: upstream,
		BaseURL:       d.BaseURL,
		APIKey:        d.APIKey,
		KeyVars:       d.KeyVars,
	}

	if b != nil {
		t.Overridden = true
		t.Binding = b
		t.BaseURL = b.BaseURL
		if b.HasKey() {
			t.APIKey = b.APIKey
		}
		keyFrom := b.Origin + "#api_key"
		if b.Source != domain.SourceFile {
			keyFrom = strings.TrimSuffix(b.Origin, "_ENDPOINT") + "_API_KEY"
		}
		t.KeyVars = append([]string{keyFrom}, d.KeyVars...)
	}

	return t
}

// endpointOrigin names where target's base URL was configured.
func (s *RouterService) endpointOrigin(t *domain.Target) string {
	if t.Binding != nil {
		return t.Binding.Origin
	}
	if vars := s.defaults(t.Provider).URLVars; len(vars) > 0 {
		return vars[0]
	}
	return "built-in default"
}

func (s *RouterService) defaults(p domain.Provider) domain.ProviderDefaults {
	return s.cfg.Defaults[p]
}

// Providers reports the dispatch order and whether each provider can serve
// requests with the current configuration.
func (s *RouterService) Providers() []ports.ProviderStatus {
	out := make([]ports.ProviderStatus, 0, len(domain.DispatchOrder()))
	for i, p := range domain.DispatchOrder() {
		d := s.defaults(p)
		st := ports.ProviderStatus{
			Provider: p,
			Priority: i + 1,
			BaseURL:  d.BaseURL,
			HasKey:   d.APIKey != "",
		}
		if p.Overridable() {
			st.Overrides = len(s.resolver.Bindings(p))
		}

		switch p {
		case domain.Unified:
			st.Enabled = s.cfg.UnifiedEnabled
		case domain.Custom:
			st.Enabled = d.BaseURL != ""
		default:
			st.Enabled = st.HasKey || st.Overrides > 0
		}
		out = append(out, st)
	}
	return out
}

func (s *RouterService) ListModels(p domain.Provider) []domain.ModelDefinition {
	return s.catalog.ListModels(p)
}
