package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/unified-router/internal/buildinfo"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/pkg/api"
)

// Health reports liveness. ?requires=<constraint> additionally checks the
// running version, e.g. ?requires=>=0.2.
func (h *Handler) Health(c *gin.Context) {
	resp := api.HealthResponse{
		Status:  "ok",
		Version: buildinfo.Version().String(),
	}

	if constraint := c.Query("requires"); constraint != "" {
		ok, err := buildinfo.Satisfies(constraint)
		if err != nil {
			_ = c.Error(domain.ValidationError(map[string]string{"requires": err.Error()}))
			return
		}
		resp.Satisfies = &ok
	}

	c.JSON(http.StatusOK, resp)
}

// Ready reports whether at least one provider can serve requests. Skipped
// endpoint config files are surfaced as warnings but never fail readiness.
func (h *Handler) Ready(c *gin.Context) {
	resp := api.HealthResponse{
		Status:  "ready",
		Version: buildinfo.Version().String(),
	}

	for _, err := range h.resolver.FileErrors() {
		resp.Warnings = append(resp.Warnings, err.Error())
	}
	for _, st := range h.service.Providers() {
		if st.Enabled {
			resp.Providers++
		}
	}

	status := http.StatusOK
	if resp.Providers == 0 {
		resp.Status = "unavailable"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
