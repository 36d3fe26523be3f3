package domain

// Target is the outcome of routing a model: the provider that serves it and
// the options its client is constructed with.
type Target struct {
	Provider Provider `json:"provider"`
	// Model is the name as requested; UpstreamModel has aliases resolved.
	Model         string   `json:"model"`
	UpstreamModel string   `json:"upstream_model"`
	BaseURL       string   `json:"base_url"`
	APIKey        string   `json:"-"`
	Overridden    bool     `json:"overridden"`
	Binding       *Binding `json:"binding,omitempty"`
	// KeyVars are the variables that could supply APIKey, for error reporting.
	KeyVars []string `json:"-"`
}

// Credentials checks that the target carries the key its provider needs.
// It is called when a request is about to be made, not while routing.
func (t Target) Credentials() error {
	if !t.Provider.RequiresKey() || t.APIKey != "" {
		return nil
	}
	return &MissingCredentialError{Provider: t.Provider, Model: t.Model, Vars: t.KeyVars}
}
