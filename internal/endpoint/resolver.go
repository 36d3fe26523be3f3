package endpoint

import (
	"sort"
	"strings"

	"github.com/nulzo/unified-router/internal/core/domain"
	"go.uber.org/zap"
)

// Resolver looks up per-model endpoint overrides. All sources are read when
// the resolver is built; afterwards it is read-only and safe for concurrent use.
type Resolver struct {
	env    Environ
	files  map[domain.Provider]*fileEndpoints
	errs   []error
	logger *zap.Logger
}

type Option func(*Resolver)

// WithLogger sets the logger used while loading config files.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver builds a resolver over env, eagerly loading every
// PROVIDER_ENDPOINTS_CONFIG file it names. Files that cannot be read or
// parsed are recorded and skipped.
func NewResolver(env Environ, opts ...Option) *Resolver {
	r := &Resolver{
		env:    env,
		files:  make(map[domain.Provider]*fileEndpoints),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, p := range domain.DispatchOrder() {
		if !p.Overridable() {
			continue
		}
		path := env.Get(ConfigPathVar(p))
		if path == "" {
			continue
		}

		f, err := loadFile(p, path)
		if err != nil {
			r.errs = append(r.errs, err)
			r.logger.Warn("Ignoring endpoints config",
				zap.String("provider", p.String()),
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		r.files[p] = f
		r.logger.Info("Loaded endpoints config",
			zap.String("provider", p.String()),
			zap.String("path", path),
			zap.Int("endpoints", f.len()),
		)
	}

	return r
}

// Resolve returns the endpoint override for model under provider p. The
// second result is false when the provider default endpoint should be used.
//
// Precedence: PROVIDER_MODEL_ENDPOINT, then (unified only) the legacy
// MODEL_ENDPOINT form, then the provider's config file.
func (r *Resolver) Resolve(p domain.Provider, model string) (domain.Binding, bool) {
	if !p.Overridable() || strings.TrimSpace(model) == "" {
		return domain.Binding{}, false
	}

	prefix := providerPrefix(p)
	for _, key := range keyCandidates(model) {
		if b, ok := r.fromEnv(p, model, prefix+key, domain.SourceEnv); ok {
			return b, true
		}
	}

	if p == domain.Unified {
		for _, key := range keyCandidates(model) {
			if ownedByProvider(key + "_") {
				continue
			}
			if b, ok := r.fromEnv(p, model, key, domain.SourceLegacyEnv); ok {
				return b, true
			}
		}
	}

	if f := r.files[p]; f != nil {
		if _, spec, ok := f.lookup(model); ok {
			return domain.Binding{
				Provider: p,
				Model:    model,
				ModelKey: ModelKey(model),
				BaseURL:  strings.TrimSpace(spec.BaseURL),
				APIKey:   strings.TrimSpace(spec.APIKey),
				Source:   domain.SourceFile,
				Origin:   f.path,
			}, true
		}
	}

	return domain.Binding{}, false
}

// fromEnv reads stem+_ENDPOINT and its paired stem+_API_KEY.
func (r *Resolver) fromEnv(p domain.Provider, model, stem string, src domain.BindingSource) (domain.Binding, bool) {
	url := r.env.Get(stem + endpointSuffix)
	if url == "" {
		return domain.Binding{}, false
	}
	return domain.Binding{
		Provider: p,
		Model:    model,
		ModelKey: ModelKey(model),
		BaseURL:  url,
		APIKey:   r.env.Get(stem + apiKeySuffix),
		Source:   src,
		Origin:   stem + endpointSuffix,
	}, true
}

// Has reports whether an override exists for model under p.
func (r *Resolver) Has(p domain.Provider, model string) bool {
	_, ok := r.Resolve(p, model)
	return ok
}

// Bindings enumerates every override configured for p. Environment entries
// shadow file entries for the same model.
func (r *Resolver) Bindings(p domain.Provider) []domain.Binding {
	if !p.Overridable() {
		return nil
	}

	seen := make(map[string]bool)
	var out []domain.Binding

	add := func(b domain.Binding) {
		c := strings.ReplaceAll(b.ModelKey, "_", "")
		if seen[c] {
			return
		}
		seen[c] = true
		out = append(out, b)
	}

	prefix := providerPrefix(p)
	for _, name := range r.env.Keys() {
		if len(name) <= len(prefix)+len(endpointSuffix) ||
			!strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, endpointSuffix) {
			continue
		}
		key := strings.TrimSuffix(strings.TrimPrefix(name, prefix), endpointSuffix)
		if key == "" {
			continue
		}
		if b, ok := r.fromEnv(p, modelFromKey(key), prefix+key, domain.SourceEnv); ok {
			b.ModelKey = key
			add(b)
		}
	}

	if p == domain.Unified {
		for _, name := range r.env.Keys() {
			if !strings.HasSuffix(name, endpointSuffix) || ownedByProvider(name) {
				continue
			}
			key := strings.TrimSuffix(name, endpointSuffix)
			if key == "" {
				continue
			}
			if b, ok := r.fromEnv(p, modelFromKey(key), key, domain.SourceLegacyEnv); ok {
				b.ModelKey = key
				add(b)
			}
		}
	}

	if f := r.files[p]; f != nil {
		for _, name := range f.names {
			spec := f.entries[name]
			add(domain.Binding{
				Provider: p,
				Model:    name,
				ModelKey: ModelKey(name),
				BaseURL:  strings.TrimSpace(spec.BaseURL),
				APIKey:   strings.TrimSpace(spec.APIKey),
				Source:   domain.SourceFile,
				Origin:   f.path,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ModelKey < out[j].ModelKey })
	return out
}

// FileErrors returns the config files that were skipped at load time.
func (r *Resolver) FileErrors() []error {
	return append([]error(nil), r.errs...)
}

// foreignPrefixes mark *_ENDPOINT variables set by other tooling, which are
// never legacy model overrides.
var foreignPrefixes = []string{"OTEL_", "AZURE_OPENAI_"}

// ownedByProvider reports whether an env var belongs to a provider namespace
// or to other tooling rather than the legacy unified form.
func ownedByProvider(name string) bool {
	for _, p := range domain.DispatchOrder() {
		if strings.HasPrefix(name, providerPrefix(p)) {
			return true
		}
	}
	for _, prefix := range foreignPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
