package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fivestore/fivestore-api/internal/client/mercadopago"
	"github.com/fivestore/fivestore-api/internal/mocks"
	"github.com/fivestore/fivestore-api/internal/services"
)

func newTestPaymentHandler(t *testing.T) (*PaymentHandler, *mocks.MockPaymentsAPI) {
	t.Helper()
	payments := mocks.NewMockPaymentsAPIForTest(t)
	checkout := services.NewCheckoutService(payments, nil, services.CheckoutConfig{
		DefaultDescription:  "Produto Five Store",
		DefaultDocumentType: "CPF",
		FallbackPayerEmail:  "cliente@fivestore.com.br",
		FallbackPayerName:   "Cliente",
		PaymentTimeout:      time.Second,
	}, nil)
	return NewPaymentHandler(&CommonServices{}, checkout, nil), payments
}

func postProcessPayment(handler *PaymentHandler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/process_payment",
		bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.ProcessPayment(c)
	return w
}

func TestPaymentHandler_ProcessPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the processor result untouched on success", func(t *testing.T) {
		handler, payments := newTestPaymentHandler(t)

		raw := []byte(`{"id":321,"status":"pending","status_detail":"pending_waiting_transfer"}`)
		payments.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&mercadopago.Payment{ID: 321, Status: "pending", Raw: raw}, nil)

		w := postProcessPayment(handler, `{
			"transaction_amount": 50,
			"payment_method_id": "pix",
			"payer": {"email": "a@b.com"}
		}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, string(raw), w.Body.String())
	})

	t.Run("invalid JSON body is a 400", func(t *testing.T) {
		handler, _ := newTestPaymentHandler(t)

		w := postProcessPayment(handler, `{not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "error", response["status"])
	})

	t.Run("input errors are a 400 with field causes", func(t *testing.T) {
		handler, payments := newTestPaymentHandler(t)

		payments.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Times(0)

		w := postProcessPayment(handler, `{
			"transaction_amount": 10,
			"payment_method_id": "visa",
			"formData": {}
		}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response struct {
			Status string `json:"status"`
			Causes []struct {
				Field string `json:"field"`
			} `json:"causes"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "error", response.Status)
		assert.NotEmpty(t, response.Causes)
	})

	t.Run("processor rejection is a 500 preserving the message and body", func(t *testing.T) {
		handler, payments := newTestPaymentHandler(t)

		payments.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &mercadopago.APIError{
				StatusCode: 400,
				Message:    "cc_rejected_insufficient_amount",
				Body:       []byte(`{"message":"cc_rejected_insufficient_amount"}`),
			})

		w := postProcessPayment(handler, `{
			"transaction_amount": 50,
			"payment_method_id": "pix",
			"payer": {"email": "a@b.com"}
		}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "error", response["status"])
		assert.Equal(t, "cc_rejected_insufficient_amount", response["message"])
		assert.Contains(t, response, "api_response")
	})

	t.Run("non-JSON processor body still yields the error envelope", func(t *testing.T) {
		handler, payments := newTestPaymentHandler(t)

		payments.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &mercadopago.APIError{
				StatusCode: 502,
				Message:    "502 Bad Gateway",
				Body:       []byte("upstream unavailable"),
			})

		w := postProcessPayment(handler, `{
			"transaction_amount": 50,
			"payment_method_id": "pix",
			"payer": {"email": "a@b.com"}
		}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "error", response["status"])
		assert.Equal(t, "502 Bad Gateway", response["message"])
		assert.NotContains(t, response, "api_response")
	})

	t.Run("transport failure is a 500 with a generic message", func(t *testing.T) {
		handler, payments := newTestPaymentHandler(t)

		payments.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		w := postProcessPayment(handler, `{
			"transaction_amount": 50,
			"payment_method_id": "pix",
			"payer": {"email": "a@b.com"}
		}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Erro ao processar pagamento", response["message"])
		assert.NotContains(t, response, "api_response")
	})
}
