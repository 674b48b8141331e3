package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fivestore/fivestore-api/internal/client/mercadopago"
	"github.com/fivestore/fivestore-api/internal/services"
	"github.com/fivestore/fivestore-api/internal/types/api/requests"
	"github.com/fivestore/fivestore-api/internal/types/api/responses"
)

// PaymentHandler manages the checkout payment endpoint
type PaymentHandler struct {
	common   *CommonServices
	checkout *services.CheckoutService
	logger   *zap.Logger
}

// NewPaymentHandler creates a new payment handler with the required dependencies
func NewPaymentHandler(common *CommonServices, checkout *services.CheckoutService, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &PaymentHandler{
		common:   common,
		checkout: checkout,
		logger:   logger,
	}
}

// ProcessPayment godoc
// @Summary Process a checkout payment
// @Description Normalizes the checkout form data, submits it to the payment processor and returns the processor's result. Approved, pending and rejected payments all return 200; the processor's status field carries the real outcome.
// @Tags payments
// @Accept json
// @Produce json
// @Param body body requests.CheckoutInput true "Checkout form data"
// @Success 200 {object} mercadopago.Payment
// @Failure 400 {object} responses.PaymentErrorResponse
// @Failure 500 {object} responses.PaymentErrorResponse
// @Router /process_payment [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var input requests.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid JSON in request body", err)
		return
	}

	payment, err := h.checkout.SubmitPayment(c.Request.Context(), input)
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	// Pass the processor's response through untouched
	c.Data(http.StatusOK, "application/json", payment.Raw)
}

// respondPaymentError maps the error taxonomy to HTTP: input errors are the
// caller's fault (400), everything from the processor or the network is a
// failed submission (500) carrying the processor's message when available.
func (h *PaymentHandler) respondPaymentError(c *gin.Context, err error) {
	var verr *services.ValidationErrors
	if errors.As(err, &verr) {
		causes := make([]responses.FieldError, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			causes = append(causes, responses.FieldError{Field: fe.Field, Message: fe.Message})
		}
		h.logger.Warn("rejected invalid checkout input",
			zap.Int("cause_count", len(causes)),
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusBadRequest, responses.PaymentErrorResponse{
			Status:  "error",
			Message: "Dados de pagamento inválidos",
			Causes:  causes,
		})
		return
	}

	var apiErr *mercadopago.APIError
	if errors.As(err, &apiErr) {
		h.logger.Error("payment rejected",
			zap.Int("processor_status", apiErr.StatusCode),
			zap.String("message", apiErr.Message))
		response := responses.PaymentErrorResponse{
			Status:  "error",
			Message: apiErr.Message,
		}
		// The processor body is stored unvalidated; a non-JSON body (plain
		// text gateway errors) would break the render of the whole envelope.
		if json.Valid(apiErr.Body) {
			response.APIResponse = apiErr.Body
		}
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	h.logger.Error("payment submission failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, responses.PaymentErrorResponse{
		Status:  "error",
		Message: "Erro ao processar pagamento",
	})
}
