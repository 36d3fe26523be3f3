package endpoint

import (
	"strings"

	"github.com/nulzo/unified-router/internal/core/domain"
)

const (
	endpointSuffix   = "_ENDPOINT"
	apiKeySuffix     = "_API_KEY"
	configPathSuffix = "_ENDPOINTS_CONFIG"

	unifiedNamespace = "model_endpoints"
)

// ModelKey normalizes a model name into the token used inside environment
// variable names: uppercase, hyphens become underscores, and every other
// character outside [A-Z0-9_] is dropped.
//
//	gpt-4          -> GPT_4
//	gemini-2.5-pro -> GEMINI_25_PRO
//	o3             -> O3
func ModelKey(model string) string {
	var b strings.Builder
	b.Grow(len(model))
	for _, r := range strings.ToUpper(strings.TrimSpace(model)) {
		switch {
		case r == '-' || r == '_':
			b.WriteByte('_')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CompactKey is ModelKey without separators, so that "gpt-4", "gpt4" and
// "GPT_4" all compare equal.
func CompactKey(model string) string {
	return strings.ReplaceAll(ModelKey(model), "_", "")
}

// keyCandidates returns the env tokens tried for a model, most specific first.
func keyCandidates(model string) []string {
	key := ModelKey(model)
	if key == "" {
		return nil
	}
	compact := strings.ReplaceAll(key, "_", "")
	if compact == key {
		return []string{key}
	}
	return []string{key, compact}
}

func providerPrefix(p domain.Provider) string {
	return strings.ToUpper(string(p)) + "_"
}

// EndpointVar is the PROVIDER_MODELNAME_ENDPOINT variable for a model.
func EndpointVar(p domain.Provider, model string) string {
	return providerPrefix(p) + ModelKey(model) + endpointSuffix
}

// APIKeyVar is the PROVIDER_MODELNAME_API_KEY variable paired with EndpointVar.
func APIKeyVar(p domain.Provider, model string) string {
	return providerPrefix(p) + ModelKey(model) + apiKeySuffix
}

// LegacyEndpointVar is the prefix-less MODELNAME_ENDPOINT form accepted by the
// unified interface.
func LegacyEndpointVar(model string) string {
	return ModelKey(model) + endpointSuffix
}

// LegacyAPIKeyVar pairs with LegacyEndpointVar.
func LegacyAPIKeyVar(model string) string {
	return ModelKey(model) + apiKeySuffix
}

// ConfigPathVar names the variable holding the provider's JSON config file path.
func ConfigPathVar(p domain.Provider) string {
	return strings.ToUpper(string(p)) + configPathSuffix
}

// Namespace is the top-level key a provider's entries live under in its config file.
func Namespace(p domain.Provider) string {
	if p == domain.Unified {
		return unifiedNamespace
	}
	return string(p) + "_endpoints"
}

// modelFromKey turns an env token back into a readable model name.
// GEMINI_25_PRO -> gemini-25-pro
func modelFromKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}
