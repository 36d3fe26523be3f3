package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/pkg/api"
)

// ListProviders returns the fixed dispatch order.
func (h *Handler) ListProviders(c *gin.Context) {
	statuses := h.service.Providers()

	list := api.ProviderList{Object: "list", Data: make([]api.ProviderResponse, 0, len(statuses))}
	for _, st := range statuses {
		list.Data = append(list.Data, api.ProviderResponse{
			Provider:  st.Provider.String(),
			Priority:  st.Priority,
			Enabled:   st.Enabled,
			BaseURL:   st.BaseURL,
			HasKey:    st.HasKey,
			Overrides: st.Overrides,
		})
	}

	c.JSON(http.StatusOK, list)
}

// ListModels returns the built-in catalog, optionally filtered with ?provider=.
func (h *Handler) ListModels(c *gin.Context) {
	var p domain.Provider
	if name := c.Query("provider"); name != "" {
		if errs := h.validator.Var("provider", name, "provider"); errs != nil {
			_ = c.Error(domain.ValidationError(errs))
			return
		}
		p, _ = domain.ParseProvider(name)
	}

	defs := h.service.ListModels(p)
	list := api.ModelList{Object: "list", Data: make([]api.Model, 0, len(defs))}
	for _, d := range defs {
		list.Data = append(list.Data, api.Model{
			ID:              d.Name,
			Object:          "model",
			OwnedBy:         d.Provider.String(),
			Provider:        d.Provider.String(),
			Name:            d.FriendlyName,
			Description:     d.Description,
			Aliases:         d.Aliases,
			ContextLength:   d.ContextWindow,
			MaxOutputTokens: d.MaxOutputTokens,
		})
	}

	c.JSON(http.StatusOK, list)
}
