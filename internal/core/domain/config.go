package domain

// ProviderDefaults is the built-in endpoint and credential of a provider.
// It applies whenever no endpoint override exists for a model.
type ProviderDefaults struct {
	Provider Provider `json:"provider" mapstructure:"-"`
	BaseURL  string   `json:"base_url" mapstructure:"base_url"`
	APIKey   string   `json:"-" mapstructure:"api_key"`
	// KeyVars are the environment variables the default key is read from.
	KeyVars []string `json:"-" mapstructure:"-"`
	// URLVars are the environment variables the default base URL is read from.
	URLVars []string `json:"-" mapstructure:"-"`
}
