package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fivestore/fivestore-api/internal/config"
	"github.com/fivestore/fivestore-api/internal/logger"
	"github.com/fivestore/fivestore-api/internal/middleware"
	"github.com/fivestore/fivestore-api/internal/types/api/responses"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	config *config.Config
	logger *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(cfg *config.Config, log *zap.Logger) *CommonServices {
	if log == nil {
		log = logger.Log
	}
	return &CommonServices{
		config: cfg,
		logger: log,
	}
}

// GetConfig returns the process configuration
func (s *CommonServices) GetConfig() *config.Config {
	return s.config
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	if logger.Log != nil {
		logger.Log.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("correlation_id", correlationID),
		)
	}

	c.JSON(statusCode, responses.PaymentErrorResponse{
		Status:  "error",
		Message: message,
	})
}
