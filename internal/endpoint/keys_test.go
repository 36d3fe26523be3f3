package endpoint

import (
	"testing"

	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestModelKey(t *testing.T) {
	cases := map[string]string{
		"gpt-4":              "GPT_4",
		"o3":                 "O3",
		"O3-mini":            "O3_MINI",
		"gemini-2.5-pro":     "GEMINI_25_PRO",
		"gemini25pro":        "GEMINI25PRO",
		"123":                "123",
		"llama3.2:latest":    "LLAMA32LATEST",
		"meta/llama-3-70b":   "METALLAMA_3_70B",
		"  grok-3  ":         "GROK_3",
		"already_normalized": "ALREADY_NORMALIZED",
		"":                   "",
	}

	for in, want := range cases {
		assert.Equal(t, want, ModelKey(in), "ModelKey(%q)", in)
	}
}

func TestCompactKey(t *testing.T) {
	assert.Equal(t, "GPT4", CompactKey("gpt-4"))
	assert.Equal(t, "GPT4", CompactKey("GPT_4"))
	assert.Equal(t, "GEMINI25PRO", CompactKey("gemini-2.5-pro"))
	assert.Equal(t, "2024", CompactKey("20-24"))
}

func TestKeyCandidates(t *testing.T) {
	assert.Equal(t, []string{"GPT_4", "GPT4"}, keyCandidates("gpt-4"))
	assert.Equal(t, []string{"O3"}, keyCandidates("o3"))
	assert.Nil(t, keyCandidates("..."))
}

func TestVariableNames(t *testing.T) {
	assert.Equal(t, "OPENAI_O3_ENDPOINT", EndpointVar(domain.OpenAI, "o3"))
	assert.Equal(t, "OPENAI_O3_API_KEY", APIKeyVar(domain.OpenAI, "o3"))
	assert.Equal(t, "GOOGLE_GEMINI_25_PRO_ENDPOINT", EndpointVar(domain.Google, "gemini-2.5-pro"))
	assert.Equal(t, "XAI_GROK_ENDPOINT", EndpointVar(domain.XAI, "grok"))
	assert.Equal(t, "DIAL_O3_API_KEY", APIKeyVar(domain.DIAL, "o3"))
	assert.Equal(t, "GPT_4_ENDPOINT", LegacyEndpointVar("gpt-4"))
	assert.Equal(t, "GPT_4_API_KEY", LegacyAPIKeyVar("gpt-4"))
	assert.Equal(t, "OPENAI_ENDPOINTS_CONFIG", ConfigPathVar(domain.OpenAI))
	assert.Equal(t, "UNIFIED_ENDPOINTS_CONFIG", ConfigPathVar(domain.Unified))
}

func TestNamespace(t *testing.T) {
	assert.Equal(t, "openai_endpoints", Namespace(domain.OpenAI))
	assert.Equal(t, "google_endpoints", Namespace(domain.Google))
	assert.Equal(t, "model_endpoints", Namespace(domain.Unified))
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "", MaskKey(""))
	assert.Equal(t, "****", MaskKey("short"))
	assert.Equal(t, "sk-...cdef", MaskKey("sk-1234567890abcdef"))
}
