package v1

import (
	"github.com/nulzo/unified-router/internal/core/ports"
	"github.com/nulzo/unified-router/internal/server/validator"
)

// Resolver is the endpoint resolver as seen by the admin API.
type Resolver interface {
	ports.EndpointResolver
	// FileErrors lists endpoint config files skipped at startup.
	FileErrors() []error
}

type Handler struct {
	service   ports.RouterService
	resolver  Resolver
	validator *validator.Validator
}

func NewHandler(service ports.RouterService, resolver Resolver, v *validator.Validator) *Handler {
	return &Handler{
		service:   service,
		resolver:  resolver,
		validator: v,
	}
}
