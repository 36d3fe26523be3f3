package modeldata

import "github.com/nulzo/unified-router/internal/core/domain"

// KnownModels is the built-in catalog of models served by each native
// provider. Names are the upstream model IDs; aliases are matched
// case-insensitively.
var KnownModels = []domain.ModelDefinition{
	// Google
	{
		Provider:        domain.Google,
		Name:            "gemini-2.5-pro",
		FriendlyName:    "Gemini (Pro 2.5)",
		Aliases:         []string{"pro", "gemini-pro", "gemini pro"},
		ContextWindow:   1_048_576,
		MaxOutputTokens: 65_536,
		Description:     "Deep reasoning and thinking mode (1M context)",
	},
	{
		Provider:        domain.Google,
		Name:            "gemini-2.5-flash",
		FriendlyName:    "Gemini (Flash 2.5)",
		Aliases:         []string{"flash", "flash2.5"},
		ContextWindow:   1_048_576,
		MaxOutputTokens: 65_536,
		Description:     "Ultra-fast (1M context)",
	},
	{
		Provider:        domain.Google,
		Name:            "gemini-2.0-flash",
		FriendlyName:    "Gemini (Flash 2.0)",
		Aliases:         []string{"flash-2.0", "flash2"},
		ContextWindow:   1_048_576,
		MaxOutputTokens: 65_536,
	},
	{
		Provider:        domain.Google,
		Name:            "gemini-2.0-flash-lite",
		FriendlyName:    "Gemini (Flash Lite 2.0)",
		Aliases:         []string{"flashlite", "flash-lite"},
		ContextWindow:   1_048_576,
		MaxOutputTokens: 65_536,
	},

	// OpenAI
	{
		Provider:        domain.OpenAI,
		Name:            "o3",
		FriendlyName:    "OpenAI (O3)",
		ContextWindow:   200_000,
		MaxOutputTokens: 65_536,
		Description:     "Strong reasoning (200K context)",
	},
	{
		Provider:        domain.OpenAI,
		Name:            "o3-mini",
		FriendlyName:    "OpenAI (O3-mini)",
		Aliases:         []string{"o3mini"},
		ContextWindow:   200_000,
		MaxOutputTokens: 65_536,
		Description:     "Fast O3 variant (200K context)",
	},
	{
		Provider:        domain.OpenAI,
		Name:            "o3-pro-2025-06-10",
		FriendlyName:    "OpenAI (O3-Pro)",
		Aliases:         []string{"o3-pro"},
		ContextWindow:   200_000,
		MaxOutputTokens: 65_536,
		Description:     "Professional-grade reasoning (200K context)",
	},
	{
		Provider:        domain.OpenAI,
		Name:            "o4-mini",
		FriendlyName:    "OpenAI (O4-mini)",
		Aliases:         []string{"mini", "o4mini"},
		ContextWindow:   200_000,
		MaxOutputTokens: 65_536,
		Description:     "Latest reasoning model (200K context)",
	},
	{
		Provider:        domain.OpenAI,
		Name:            "gpt-4.1-2025-04-14",
		FriendlyName:    "OpenAI (GPT 4.1)",
		Aliases:         []string{"gpt4.1"},
		ContextWindow:   1_000_000,
		MaxOutputTokens: 32_768,
		Description:     "GPT-4.1 (1M context)",
	},

	// X.AI
	{
		Provider:        domain.XAI,
		Name:            "grok-3",
		FriendlyName:    "X.AI (Grok 3)",
		Aliases:         []string{"grok", "grok3"},
		ContextWindow:   131_072,
		MaxOutputTokens: 131_072,
	},
	{
		Provider:        domain.XAI,
		Name:            "grok-3-fast",
		FriendlyName:    "X.AI (Grok 3 Fast)",
		Aliases:         []string{"grok3fast", "grokfast", "grok3-fast"},
		ContextWindow:   131_072,
		MaxOutputTokens: 131_072,
	},

	// DIAL
	{
		Provider:        domain.DIAL,
		Name:            "o3-2025-04-16",
		FriendlyName:    "DIAL (O3)",
		Aliases:         []string{"o3"},
		ContextWindow:   200_000,
		MaxOutputTokens: 100_000,
	},
	{
		Provider:        domain.DIAL,
		Name:            "o4-mini-2025-04-16",
		FriendlyName:    "DIAL (O4-mini)",
		Aliases:         []string{"o4-mini"},
		ContextWindow:   200_000,
		MaxOutputTokens: 100_000,
	},
	{
		Provider:        domain.DIAL,
		Name:            "anthropic.claude-sonnet-4-20250514-v1:0",
		FriendlyName:    "DIAL (Sonnet 4)",
		Aliases:         []string{"sonnet-4"},
		ContextWindow:   200_000,
		MaxOutputTokens: 64_000,
	},
	{
		Provider:        domain.DIAL,
		Name:            "gemini-2.5-pro-preview-05-06",
		FriendlyName:    "DIAL (Gemini 2.5 Pro)",
		Aliases:         []string{"gemini-2.5-pro"},
		ContextWindow:   1_000_000,
		MaxOutputTokens: 65_536,
	},

	// Custom (local OpenAI-compatible servers)
	{
		Provider:        domain.Custom,
		Name:            "llama3.2",
		FriendlyName:    "Local (Llama 3.2)",
		Aliases:         []string{"local-llama", "local"},
		ContextWindow:   128_000,
		MaxOutputTokens: 8_192,
	},
}
