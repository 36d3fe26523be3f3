package api

type Model struct {
	ID              string   `json:"id"`
	Object          string   `json:"object"`
	OwnedBy         string   `json:"owned_by"`
	Provider        string   `json:"provider"`
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	Aliases         []string `json:"aliases,omitempty"`
	ContextLength   int      `json:"context_length,omitempty"`
	MaxOutputTokens int      `json:"max_output_tokens,omitempty"`
}

type ModelList struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}
