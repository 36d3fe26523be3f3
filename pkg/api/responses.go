package api

// HealthResponse is returned by /health and /ready.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	// Satisfies is set when the request carried a version constraint.
	Satisfies *bool `json:"satisfies,omitempty"`
	// Warnings lists endpoint config files that were skipped at startup.
	Warnings []string `json:"warnings,omitempty"`
	// Providers counts providers able to serve requests.
	Providers int `json:"providers,omitempty"`
}

// EndpointResponse describes how one model resolves within a provider namespace.
type EndpointResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	ModelKey string `json:"model_key"`
	Override bool   `json:"override"`
	BaseURL  string `json:"base_url,omitempty"`
	// APIKey is masked; it is empty when the override carries no key.
	APIKey string `json:"api_key,omitempty"`
	Source string `json:"source,omitempty"`
	Origin string `json:"origin,omitempty"`
	// Consulted lists the variables checked, in precedence order.
	Consulted []string `json:"consulted"`
}

type EndpointList struct {
	Object   string             `json:"object"`
	Provider string             `json:"provider"`
	Data     []EndpointResponse `json:"data"`
}

// RouteResponse is the dispatch decision for a model.
type RouteResponse struct {
	Model         string `json:"model"`
	Provider      string `json:"provider"`
	UpstreamModel string `json:"upstream_model"`
	BaseURL       string `json:"base_url"`
	ChatURL       string `json:"chat_url,omitempty"`
	APIKey        string `json:"api_key,omitempty"`
	Overridden    bool   `json:"overridden"`
	Source        string `json:"source,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Credentials   string `json:"credentials"`
	// MissingVars names the variables that could supply a missing key.
	MissingVars []string `json:"missing_vars,omitempty"`
}

// Credential states reported in RouteResponse.
const (
	CredentialsOK          = "ok"
	CredentialsMissing     = "missing"
	CredentialsNotRequired = "not_required"
)

type ProviderResponse struct {
	Provider  string `json:"provider"`
	Priority  int    `json:"priority"`
	Enabled   bool   `json:"enabled"`
	BaseURL   string `json:"base_url,omitempty"`
	HasKey    bool   `json:"has_key"`
	Overrides int    `json:"overrides"`
}

type ProviderList struct {
	Object string             `json:"object"`
	Data   []ProviderResponse `json:"data"`
}

// LogLevelRequest changes the server's log level at runtime.
type LogLevelRequest struct {
	Level string `json:"level" binding:"required,oneof=debug info warn error"`
}

type LogLevelResponse struct {
	Level string `json:"level"`
}
