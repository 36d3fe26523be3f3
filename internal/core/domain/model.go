package domain

// ModelDefinition describes a model a native provider serves.
type ModelDefinition struct {
	Provider        Provider `json:"provider"`
	Name            string   `json:"name"`
	FriendlyName    string   `json:"friendly_name"`
	Aliases         []string `json:"aliases,omitempty"`
	ContextWindow   int      `json:"context_window"`
	MaxOutputTokens int      `json:"max_output_tokens"`
	Description     string   `json:"description,omitempty"`
}
