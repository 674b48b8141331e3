package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fivestore/fivestore-api/internal/types/api/requests"
	"github.com/fivestore/fivestore-api/internal/types/api/responses"
)

// AdminHandler manages the admin login check
type AdminHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(common *CommonServices, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &AdminHandler{
		common: common,
		logger: logger,
	}
}

// Login godoc
// @Summary Admin login check
// @Description Checks the supplied password against the configured admin password.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body requests.AdminLoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.PaymentErrorResponse
// @Failure 401 {object} responses.PaymentErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req requests.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "password is required", err)
		return
	}

	configured := h.common.GetConfig().AdminPassword
	if configured == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(configured)) != 1 {
		h.logger.Warn("admin login rejected",
			zap.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, responses.PaymentErrorResponse{
			Status:  "error",
			Message: "invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, responses.SuccessResponse{Status: "ok"})
}
