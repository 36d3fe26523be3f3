package server

import (
	"github.com/nulzo/unified-router/internal/server/middleware"
	v1 "github.com/nulzo/unified-router/internal/server/v1"
	"github.com/nulzo/unified-router/internal/server/validator"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.ErrorHandler(s.logger))

	h := v1.NewHandler(s.service, s.resolver, validator.New())

	s.router.GET("/health", h.Health)
	s.router.GET("/ready", h.Ready)

	api := s.router.Group("/v1")
	api.Use(s.limiter.Middleware())
	api.Use(middleware.Auth(s.config.Server.APIKeys))
	{
		api.GET("/providers", h.ListProviders)
		api.GET("/models", h.ListModels)
		api.GET("/routes/*model", h.Route)
		api.GET("/endpoints/:provider", h.ListEndpoints)
		api.GET("/endpoints/:provider/*model", h.ResolveEndpoint)
		api.GET("/log-level", h.GetLogLevel)
		api.PUT("/log-level", h.SetLogLevel)
	}
}
