package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/endpoint"
	"github.com/nulzo/unified-router/pkg/api"
)

// ResolveEndpoint shows how a model resolves within one provider namespace.
// A model without an override is not an error: override is false.
func (h *Handler) ResolveEndpoint(c *gin.Context) {
	p, ok := h.provider(c)
	if !ok {
		return
	}

	model := strings.TrimPrefix(c.Param("model"), "/")
	if model == "" {
		h.ListEndpoints(c)
		return
	}
	if errs := h.validator.Var("model", model, "required,max=256"); errs != nil {
		_ = c.Error(domain.ValidationError(errs))
		return
	}

	resp := api.EndpointResponse{
		Provider:  p.String(),
		Model:     model,
		ModelKey:  endpoint.ModelKey(model),
		Consulted: consulted(p, model),
	}
	if b, found := h.resolver.Resolve(p, model); found {
		fillBinding(&resp, b)
	}

	c.JSON(http.StatusOK, resp)
}

// ListEndpoints lists every override configured for a provider.
func (h *Handler) ListEndpoints(c *gin.Context) {
	p, ok := h.provider(c)
	if !ok {
		return
	}

	list := api.EndpointList{
		Object:   "list",
		Provider: p.String(),
		Data:     []api.EndpointResponse{},
	}
	for _, b := range h.resolver.Bindings(p) {
		var resp api.EndpointResponse
		fillBinding(&resp, b)
		list.Data = append(list.Data, resp)
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) provider(c *gin.Context) (domain.Provider, bool) {
	name := c.Param("provider")
	if errs := h.validator.Var("provider", name, "required,provider"); errs != nil {
		_ = c.Error(domain.ValidationError(errs))
		return "", false
	}
	p, _ := domain.ParseProvider(name)
	if !p.Overridable() {
		_ = c.Error(domain.ValidationError(map[string]string{
			"provider": p.String() + " does not support per-model endpoints",
		}))
		return "", false
	}
	return p, true
}

func fillBinding(resp *api.EndpointResponse, b domain.Binding) {
	resp.Provider = b.Provider.String()
	resp.Model = b.Model
	resp.ModelKey = b.ModelKey
	resp.Override = true
	resp.BaseURL = b.BaseURL
	resp.APIKey = endpoint.MaskKey(b.APIKey)
	resp.Source = string(b.Source)
	resp.Origin = b.Origin
}

// consulted lists, in precedence order, where an override for model is looked for.
func consulted(p domain.Provider, model string) []string {
	out := []string{endpoint.EndpointVar(p, model)}
	if p == domain.Unified {
		out = append(out, endpoint.LegacyEndpointVar(model))
	}
	return append(out, endpoint.ConfigPathVar(p)+"#"+endpoint.Namespace(p))
}
