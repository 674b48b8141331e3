package mercadopago

import "context"

// PaymentsAPI defines the processor operations the checkout flow depends on
type PaymentsAPI interface {
	CreatePayment(ctx context.Context, request PaymentRequest, opts CreatePaymentOptions) (*Payment, error)
}

// Ensure Client implements the interface
var _ PaymentsAPI = (*Client)(nil)
