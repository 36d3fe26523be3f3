package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/endpoint"
	"github.com/nulzo/unified-router/pkg/api"
)

// Route reports which provider serves a model and the client it would be
// built with. A missing key is reported in the body unless ?strict=true,
// in which case it is returned as a 424 problem.
func (h *Handler) Route(c *gin.Context) {
	model := strings.TrimPrefix(c.Param("model"), "/")
	if errs := h.validator.Var("model", model, "required,max=256"); errs != nil {
		_ = c.Error(domain.ValidationError(errs))
		return
	}

	client, target, err := h.service.Dispatch(c.Request.Context(), model)

	var missing *domain.MissingCredentialError
	switch {
	case err == nil:
	case errors.As(err, &missing) && target != nil && c.Query("strict") != "true":
	default:
		_ = c.Error(err)
		return
	}

	resp := api.RouteResponse{
		Model:         target.Model,
		Provider:      target.Provider.String(),
		UpstreamModel: target.UpstreamModel,
		BaseURL:       target.BaseURL,
		APIKey:        endpoint.MaskKey(target.APIKey),
		Overridden:    target.Overridden,
		Credentials:   api.CredentialsOK,
	}
	if target.Binding != nil {
		resp.Source = string(target.Binding.Source)
		resp.Origin = target.Binding.Origin
	}
	if client != nil {
		resp.ChatURL = client.ChatURL()
	}

	switch {
	case missing != nil:
		resp.Credentials = api.CredentialsMissing
		resp.MissingVars = missing.Vars
	case !target.Provider.RequiresKey() && target.APIKey == "":
		resp.Credentials = api.CredentialsNotRequired
	}

	c.JSON(http.StatusOK, resp)
}
