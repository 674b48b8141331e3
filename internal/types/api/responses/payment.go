package responses

import "encoding/json"

// PaymentErrorResponse is the body returned when a payment submission fails.
// The processor's own response body, when one was received, is passed through
// untouched in api_response so the storefront can inspect the rejection.
type PaymentErrorResponse struct {
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	APIResponse json.RawMessage `json:"api_response,omitempty"`
	Causes      []FieldError    `json:"causes,omitempty"`
}
