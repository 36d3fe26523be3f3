package domain

import (
	"fmt"
	"strings"
)

// Provider identifies an upstream model-serving API family.
type Provider string

const (
	OpenAI     Provider = "openai"
	Google     Provider = "google"
	XAI        Provider = "xai"
	DIAL       Provider = "dial"
	Unified    Provider = "unified"
	Custom     Provider = "custom"
	OpenRouter Provider = "openrouter"
)

var dispatchOrder = [...]Provider{Unified, Google, OpenAI, XAI, DIAL, Custom, OpenRouter}

// DispatchOrder is the fixed order in which providers are offered a model.
// It is not configurable; callers get a copy.
func DispatchOrder() []Provider {
	out := make([]Provider, len(dispatchOrder))
	copy(out, dispatchOrder[:])
	return out
}

// overridable lists the providers that own an endpoint-override namespace.
var overridable = map[Provider]bool{
	OpenAI:  true,
	Google:  true,
	XAI:     true,
	DIAL:    true,
	Unified: true,
}

// ParseProvider maps a case-insensitive name onto a known Provider.
func ParseProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case OpenAI, Google, XAI, DIAL, Unified, Custom, OpenRouter:
		return p, nil
	case "gemini":
		return Google, nil
	case "grok":
		return XAI, nil
	}
	return "", fmt.Errorf("unknown provider: %q", name)
}

func (p Provider) String() string { return string(p) }

// Overridable reports whether per-model endpoint overrides exist for p.
func (p Provider) Overridable() bool { return overridable[p] }

// RequiresKey reports whether requests to p need an API key. Custom and
// unified endpoints are often self-hosted and run without authentication.
func (p Provider) RequiresKey() bool { return p != Custom && p != Unified }

// BindingSource records where an endpoint override came from.
type BindingSource string

const (
	SourceEnv       BindingSource = "env"
	SourceLegacyEnv BindingSource = "legacy_env"
	SourceFile      BindingSource = "file"
)

// Binding is a resolved endpoint override for one model within a provider namespace.
type Binding struct {
	Provider Provider      `json:"provider"`
	Model    string        `json:"model"`
	ModelKey string        `json:"model_key"`
	BaseURL  string        `json:"base_url"`
	APIKey   string        `json:"-"`
	Source   BindingSource `json:"source"`
	// Origin is the env var name or config file path the binding was read from.
	Origin string `json:"origin"`
}

// HasKey reports whether the binding carries its own API key.
func (b Binding) HasKey() bool { return b.APIKey != "" }
