package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PaymentRequest is the create-payment body sent to the processor. Card-only
// fields are tagged omitempty: for non-card methods they stay at their zero
// value and never reach the wire, since the API rejects a null token for
// pix/boleto payments.
type PaymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	Payer             Payer   `json:"payer"`
	Token             string  `json:"token,omitempty"`
	Installments      int     `json:"installments,omitempty"`
	IssuerID          string  `json:"issuer_id,omitempty"`
}

// Payer identifies who is paying
type Payer struct {
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name,omitempty"`
	Identification *Identification `json:"identification,omitempty"`
}

// Identification is a payer document. Both fields must be set when the
// struct is present; the API rejects partially-specified identification.
type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// Payment is the processor's view of a created payment. Raw preserves the
// full response body so callers can pass it through untouched.
type Payment struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	TransactionAmount float64 `json:"transaction_amount"`
	PaymentMethodID   string  `json:"payment_method_id"`
	DateCreated       string  `json:"date_created"`

	Raw json.RawMessage `json:"-"`
}

// CreatePaymentOptions carries per-request options for CreatePayment
type CreatePaymentOptions struct {
	// IdempotencyKey makes retried network calls for the same logical
	// request resolve to a single charge on the processor side.
	IdempotencyKey string
}

// CreatePayment submits a payment to POST /v1/payments. Rejections come back
// as *APIError; transport failures (including timeouts) are wrapped errors.
func (c *Client) CreatePayment(ctx context.Context, request PaymentRequest, opts CreatePaymentOptions) (*Payment, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal payment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payments", bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build payment request")
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	if opts.IdempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", opts.IdempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("payment request failed",
			zap.Error(err),
			zap.String("payment_method_id", request.PaymentMethodID))
		return nil, errors.Wrap(err, "payment request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read payment response")
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
			Body:       respBody,
		}
		var parsed apiErrorBody
		if jsonErr := json.Unmarshal(respBody, &parsed); jsonErr == nil && parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		c.logger.Error("payment rejected by processor",
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
			zap.String("payment_method_id", request.PaymentMethodID))
		return nil, apiErr
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal payment response")
	}
	payment.Raw = respBody

	c.logger.Info("payment created",
		zap.Int64("payment_id", payment.ID),
		zap.String("status", payment.Status),
		zap.String("status_detail", payment.StatusDetail))

	return &payment, nil
}
