package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/unified-router/internal/core/domain"
	"github.com/nulzo/unified-router/internal/platform/logger"
	"github.com/nulzo/unified-router/pkg/api"
	"go.uber.org/zap"
)

func (h *Handler) GetLogLevel(c *gin.Context) {
	c.JSON(http.StatusOK, api.LogLevelResponse{Level: logger.Level()})
}

// SetLogLevel switches the global log level without a restart.
func (h *Handler) SetLogLevel(c *gin.Context) {
	var req api.LogLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.ValidationError(h.validator.ParseError(err)))
		return
	}

	previous := logger.Level()
	logger.SetLevel(req.Level)
	logger.Info("Log level changed", zap.String("from", previous), zap.String("to", logger.Level()))

	c.JSON(http.StatusOK, api.LogLevelResponse{Level: logger.Level()})
}
