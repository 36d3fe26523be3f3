package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nulzo/unified-router/internal/adapters/providers"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/endpoint"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Unified   UnifiedConfig   `mapstructure:"unified"`
	Custom    CustomConfig    `mapstructure:"custom"`

	// Providers holds the default endpoint and key of every provider.
	Providers map[domain.Provider]domain.ProviderDefaults `mapstructure:"-"`
	// Env is the process environment captured when the config was loaded.
	// Endpoint overrides are resolved against it, never against os.Getenv.
	Env endpoint.Environ `mapstructure:"-"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
	// APIKeys enables bearer authentication on /v1 when non-empty.
	APIKeys []string `mapstructure:"api_keys"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

type UnifiedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type CustomConfig struct {
	// Models are extra names routed to the custom endpoint.
	Models []string `mapstructure:"models"`
}

const enableUnifiedVar = "ENABLE_UNIFIED_OPENAI"

// providerVars names the environment variables each provider's defaults are read from.
var providerVars = []struct {
	provider domain.Provider
	keys     []string
	urls     []string
}{
	{domain.Google, []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}, []string{"GEMINI_API_URL"}},
	{domain.OpenAI, []string{"OPENAI_API_KEY"}, []string{"OPENAI_API_URL"}},
	{domain.XAI, []string{"XAI_API_KEY"}, []string{"XAI_API_URL"}},
	{domain.DIAL, []string{"DIAL_API_KEY"}, []string{"DIAL_API_HOST"}},
	{domain.Custom, []string{"CUSTOM_API_KEY"}, []string{"CUSTOM_API_URL"}},
	{domain.OpenRouter, []string{"OPENROUTER_API_KEY"}, []string{"OPENROUTER_API_URL"}},
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	// Default Values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "unified-router")
	v.SetDefault("unified.enabled", false)

	// Environment Variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	cfg.Env = endpoint.FromOS()
	cfg.Providers = providerDefaults(v, cfg.Env)

	// ENABLE_UNIFIED_OPENAI accepts yes/on as well and wins over unified.enabled
	if cfg.Env.Get(enableUnifiedVar) != "" {
		cfg.Unified.Enabled = cfg.Env.Bool(enableUnifiedVar)
	}

	if name := cfg.Env.Get("CUSTOM_MODEL_NAME"); name != "" {
		cfg.Custom.Models = append(cfg.Custom.Models, name)
	}

	return &cfg, nil
}

// providerDefaults merges environment variables over the optional
// providers.<name>.{api_key,base_url} file entries, then the built-in endpoints.
func providerDefaults(v *viper.Viper, env endpoint.Environ) map[domain.Provider]domain.ProviderDefaults {
	out := make(map[domain.Provider]domain.ProviderDefaults, len(providerVars)+1)
	out[domain.Unified] = domain.ProviderDefaults{Provider: domain.Unified}

	for _, pv := range providerVars {
		section := "providers." + pv.provider.String()

		key, _ := env.First(pv.keys...)
		if key == "" {
			key = strings.TrimSpace(v.GetString(section + ".api_key"))
		}

		baseURL, _ := env.First(pv.urls...)
		if baseURL == "" {
			baseURL = strings.TrimSpace(v.GetString(section + ".base_url"))
		}
		if baseURL == "" {
			baseURL = providers.DefaultBaseURL(pv.provider)
		}

		out[pv.provider] = domain.ProviderDefaults{
			Provider: pv.provider,
			BaseURL:  baseURL,
			APIKey:   key,
			KeyVars:  pv.keys,
			URLVars:  pv.urls,
		}
	}

	return out
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}
