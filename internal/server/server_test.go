package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/nulzo/unified-router/internal/adapters/providers/factory"
	"github.com/nulzo/unified-router/internal/config"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/core/services"
	"github.com/nulzo/unified-router/internal/endpoint"
	"github.com/nulzo/unified-router/internal/modeldata"
	"github.com/nulzo/unified-router/internal/platform/logger"
	"github.com/nulzo/unified-router/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	handler http.Handler
	token   string
}

func newTestServer(t *testing.T, env map[string]string, keys map[domain.Provider]string) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server:    config.ServerConfig{Port: "0", Env: "test", APIKeys: []string{"admin-token"}},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		Unified:   config.UnifiedConfig{Enabled: true},
		Providers: map[domain.Provider]domain.ProviderDefaults{
			domain.OpenAI:     {BaseURL: "https://api.openai.com/v1", KeyVars: []string{"OPENAI_API_KEY"}},
			domain.Google:     {BaseURL: "https://generativelanguage.googleapis.com/v1beta", KeyVars: []string{"GEMINI_API_KEY"}},
			domain.XAI:        {BaseURL: "https://api.x.ai/v1", KeyVars: []string{"XAI_API_KEY"}},
			domain.DIAL:       {BaseURL: "https://core.dialx.ai", KeyVars: []string{"DIAL_API_KEY"}},
			domain.Custom:     {BaseURL: "http://localhost:11434/v1"},
			domain.OpenRouter: {BaseURL: "https://openrouter.ai/api/v1", KeyVars: []string{"OPENROUTER_API_KEY"}},
		},
	}
	for p, k := range keys {
		d := cfg.Providers[p]
		d.APIKey = k
		cfg.Providers[p] = d
	}

	resolver := endpoint.NewResolver(endpoint.NewEnviron(env))
	router := services.NewRouterService(resolver, services.NewInMemoryModelRegistry(modeldata.KnownModels), services.RouterConfig{
		UnifiedEnabled: cfg.Unified.Enabled,
		Defaults:       cfg.Providers,
	}, zap.NewNop())
	router.SetClientFactory(factory.NewProviderFactory())

	return &testServer{
		handler: New(cfg, zap.NewNop(), router, resolver).Handler(),
		token:   "admin-token",
	}
}

func (s *testServer) get(t *testing.T, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w
}

func TestLogLevel(t *testing.T) {
	s := newTestServer(t, nil, nil)
	t.Cleanup(func() { logger.SetLevel("info") })

	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/v1/log-level", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+s.token)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.handler.ServeHTTP(w, req)
		return w
	}

	w := put(`{"level": "debug"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.LogLevelResponse
	w = s.get(t, "/v1/log-level", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "debug", resp.Level)

	w = put(`{"level": "loud"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	errs, ok := problem["errors"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	assert.Equal(t, "must be one of [debug, info, warn, error]", errs["level"])
	assert.Equal(t, "debug", logger.Level())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var resp api.HealthResponse
	w := s.get(t, "/health?requires=>=0.0.1", &resp)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Satisfies)

	w = s.get(t, "/health?requires=!!", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReady_WarnsAboutSkippedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	s := newTestServer(t, map[string]string{"OPENAI_ENDPOINTS_CONFIG": path}, nil)

	var resp api.HealthResponse
	w := s.get(t, "/ready", &resp)
	assert.Equal(t, http.StatusOK, w.Code, "custom endpoint keeps the server ready")
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "broken.json")
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.token = "wrong"

	w := s.get(t, "/v1/providers", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListProviders(t *testing.T) {
	s := newTestServer(t, nil, map[domain.Provider]string{domain.Google: "g"})

	var list api.ProviderList
	w := s.get(t, "/v1/providers", &list)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, list.Data, 7)

	var order []string
	for _, p := range list.Data {
		order = append(order, p.Provider)
	}
	assert.Equal(t, []string{"unified", "google", "openai", "xai", "dial", "custom", "openrouter"}, order)
	assert.True(t, list.Data[1].HasKey)
}

func TestListModels(t *testing.T) {
	s := newTestServer(t, nil, nil)

	var list api.ModelList
	w := s.get(t, "/v1/models?provider=grok", &list)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "xai", list.Data[0].Provider)

	w = s.get(t, "/v1/models?provider=bedrock", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveEndpoint(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"OPENAI_O3_ENDPOINT": "https://custom-openai.com/v1",
		"OPENAI_O3_API_KEY":  "sk-override-1234",
	}, nil)

	var resp api.EndpointResponse
	w := s.get(t, "/v1/endpoints/openai/o3", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Override)
	assert.Equal(t, "https://custom-openai.com/v1", resp.BaseURL)
	assert.Equal(t, "sk-...1234", resp.APIKey)
	assert.Equal(t, "env", resp.Source)
	assert.NotContains(t, w.Body.String(), "sk-override-1234")

	resp = api.EndpointResponse{}
	w = s.get(t, "/v1/endpoints/openai/o4-mini", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.Override)
	assert.Equal(t, []string{"OPENAI_O4_MINI_ENDPOINT", "OPENAI_ENDPOINTS_CONFIG#openai_endpoints"}, resp.Consulted)

	w = s.get(t, "/v1/endpoints/openrouter/x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEndpoints(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"GPT4_ENDPOINT":            "https://x/v1",
		"UNIFIED_LLAMA_3_ENDPOINT": "http://localhost:8000/v1",
	}, nil)

	var list api.EndpointList
	w := s.get(t, "/v1/endpoints/unified", &list)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "GPT4", list.Data[0].ModelKey)
	assert.Equal(t, "LLAMA_3", list.Data[1].ModelKey)
}

func TestRoute(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"TEST_MODEL_ENDPOINT": "http://localhost:11434/v1",
	}, map[domain.Provider]string{domain.XAI: "xai-secret-key"})

	var resp api.RouteResponse
	w := s.get(t, "/v1/routes/test-model", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "unified", resp.Provider)
	assert.Equal(t, "http://localhost:11434/v1/chat/completions", resp.ChatURL)
	assert.Equal(t, api.CredentialsNotRequired, resp.Credentials)
	assert.Equal(t, "legacy_env", resp.Source)

	resp = api.RouteResponse{}
	w = s.get(t, "/v1/routes/grok", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "xai", resp.Provider)
	assert.Equal(t, "grok-3", resp.UpstreamModel)
	assert.Equal(t, api.CredentialsOK, resp.Credentials)
	assert.NotContains(t, w.Body.String(), "xai-secret-key")
}

func TestRoute_MissingCredential(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"DIAL_O3_ENDPOINT": "https://custom-dial-endpoint.com",
	}, nil)

	var resp api.RouteResponse
	w := s.get(t, "/v1/routes/o3", &resp)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dial", resp.Provider)
	assert.Equal(t, api.CredentialsMissing, resp.Credentials)
	assert.Equal(t, []string{"DIAL_O3_API_KEY", "DIAL_API_KEY"}, resp.MissingVars)

	w = s.get(t, "/v1/routes/o3?strict=true", nil)
	assert.Equal(t, http.StatusFailedDependency, w.Code)
}

func TestRoute_InvalidOverrideEndpoint(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"OPENAI_O3_ENDPOINT": "localhost:8000/v1",
	}, map[domain.Provider]string{domain.OpenAI: "sk-openai"})

	w := s.get(t, "/v1/routes/o3", nil)
	require.Equal(t, http.StatusFailedDependency, w.Code, w.Body.String())
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid Endpoint", body["title"])
	assert.Equal(t, "OPENAI_O3_ENDPOINT", body["origin"])
	assert.Contains(t, body["detail"], "localhost:8000/v1")
}

func TestRoute_Unresolved(t *testing.T) {
	s := newTestServer(t, nil, nil)

	w := s.get(t, "/v1/routes/claude-3-opus", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no provider found for model: claude-3-opus")
}
