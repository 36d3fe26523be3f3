package providers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nulzo/unified-router/internal/core/domain"
)

// Built-in endpoints used when no base URL is configured for a provider.
const (
	OpenAIBaseURL     = "https://api.openai.com/v1"
	GoogleBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	XAIBaseURL        = "https://api.x.ai/v1"
	DIALBaseURL       = "https://core.dialx.ai"
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

var defaultBaseURLs = map[domain.Provider]string{
	domain.OpenAI:     OpenAIBaseURL,
	domain.Google:     GoogleBaseURL,
	domain.XAI:        XAIBaseURL,
	domain.DIAL:       DIALBaseURL,
	domain.OpenRouter: OpenRouterBaseURL,
}

// DefaultBaseURL returns the built-in endpoint of p. Unified and Custom have
// none and return "".
func DefaultBaseURL(p domain.Provider) string {
	return defaultBaseURLs[p]
}

// NormalizeBaseURL checks that raw is an absolute http(s) URL and strips any
// trailing slash. Errors wrap domain.ErrInvalidEndpoint.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: base URL is empty", domain.ErrInvalidEndpoint)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: base URL %q: %w", domain.ErrInvalidEndpoint, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: base URL %q: scheme must be http or https", domain.ErrInvalidEndpoint, raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: base URL %q: missing host", domain.ErrInvalidEndpoint, raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
