package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fivestore/fivestore-api/internal/client/mercadopago"
	"github.com/fivestore/fivestore-api/internal/types/api/requests"
)

// noCardMethods are the payment methods that must not carry card fields.
// Sending a null token for these makes the processor reject the request.
var noCardMethods = map[string]bool{
	"pix":         true,
	"bolbradesco": true,
}

// FieldError describes one invalid checkout input field
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors is the structured list of input errors produced by
// normalization. It is detected before any network call is made.
type ValidationErrors struct {
	Errors []FieldError
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "invalid checkout input: " + strings.Join(msgs, "; ")
}

func (e *ValidationErrors) add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// CheckoutConfig holds the normalization defaults and the submission timeout.
// It is injected at construction time; the service never reads ambient state.
type CheckoutConfig struct {
	DefaultDescription  string
	DefaultDocumentType string
	FallbackPayerEmail  string
	FallbackPayerName   string
	PaymentTimeout      time.Duration
}

// OrderNotifier dispatches the optional post-payment confirmation message
type OrderNotifier interface {
	SendOrderConfirmation(ctx context.Context, params OrderConfirmationParams) error
}

// CheckoutService normalizes checkout input into a valid, idempotent
// create-payment request and submits it to the payment processor
type CheckoutService struct {
	payments mercadopago.PaymentsAPI
	notifier OrderNotifier
	config   CheckoutConfig
	logger   *zap.Logger
}

// NewCheckoutService creates a new checkout service. notifier may be nil,
// in which case no confirmation messages are dispatched.
func NewCheckoutService(payments mercadopago.PaymentsAPI, notifier OrderNotifier, config CheckoutConfig, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.L()
	}
	if config.PaymentTimeout <= 0 {
		config.PaymentTimeout = mercadopago.DefaultTimeout
	}
	return &CheckoutService{
		payments: payments,
		notifier: notifier,
		config:   config,
		logger:   logger,
	}
}

// SubmitPayment validates and normalizes the checkout input, attaches a fresh
// idempotency key and submits the payment. Input problems come back as
// *ValidationErrors before any network call; processor rejections come back
// as *mercadopago.APIError. The call is bounded by the configured timeout.
func (s *CheckoutService) SubmitPayment(ctx context.Context, input requests.CheckoutInput) (*mercadopago.Payment, error) {
	request, verr := s.normalize(input)
	if verr != nil {
		return nil, verr
	}

	// One key per submission attempt, never reused across calls
	idempotencyKey := uuid.New().String()

	submitCtx, cancel := context.WithTimeout(ctx, s.config.PaymentTimeout)
	defer cancel()

	payment, err := s.payments.CreatePayment(submitCtx, request, mercadopago.CreatePaymentOptions{
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment submitted",
		zap.Int64("payment_id", payment.ID),
		zap.String("status", payment.Status),
		zap.String("payment_method_id", request.PaymentMethodID),
		zap.Float64("transaction_amount", request.TransactionAmount))

	s.dispatchConfirmation(ctx, input, payment)

	return payment, nil
}

// normalize derives a well-formed create-payment request from the untrusted
// input, or a structured list of input errors. It is total: no nested
// optional structure is dereferenced without a presence check.
func (s *CheckoutService) normalize(input requests.CheckoutInput) (mercadopago.PaymentRequest, *ValidationErrors) {
	verr := &ValidationErrors{}

	amount := input.TransactionAmount
	switch {
	case !amount.Set:
		verr.add("transaction_amount", "is required")
	case !amount.Valid:
		verr.add("transaction_amount", "must be a number")
	case math.IsNaN(amount.Value) || math.IsInf(amount.Value, 0) || amount.Value <= 0:
		verr.add("transaction_amount", "must be a positive number")
	}

	description := input.Description
	if description == "" {
		description = s.config.DefaultDescription
	}

	// The payment brick posts payment_method_id inside formData; accept it
	// at the top level as well, with formData winning when both are set.
	methodID := input.PaymentMethodID
	if input.FormData != nil && input.FormData.PaymentMethodID != "" {
		methodID = input.FormData.PaymentMethodID
	}
	if methodID == "" {
		verr.add("payment_method_id", "is required")
	}

	request := mercadopago.PaymentRequest{
		Description:     description,
		PaymentMethodID: methodID,
		Payer: mercadopago.Payer{
			Email:          s.config.FallbackPayerEmail,
			FirstName:      s.config.FallbackPayerName,
			Identification: s.resolveIdentification(input),
		},
	}
	if amount.Valid {
		request.TransactionAmount = amount.Value
	}

	if input.Payer != nil {
		if input.Payer.Email != "" {
			request.Payer.Email = input.Payer.Email
		}
		if input.Payer.FirstName != "" {
			request.Payer.FirstName = input.Payer.FirstName
		}
	}

	if methodID != "" && !noCardMethods[methodID] {
		s.applyCardFields(&request, input.FormData, verr)
	}

	if len(verr.Errors) > 0 {
		return mercadopago.PaymentRequest{}, verr
	}
	return request, nil
}

// applyCardFields validates and copies the card-only fields. Missing card
// data is a caller input error, surfaced before the processor is called.
func (s *CheckoutService) applyCardFields(request *mercadopago.PaymentRequest, formData *requests.CheckoutFormData, verr *ValidationErrors) {
	if formData == nil {
		verr.add("formData", "is required for card payments")
		return
	}

	if formData.Token == "" {
		verr.add("formData.token", "is required for card payments")
	}
	request.Token = formData.Token

	installments := formData.Installments
	switch {
	case !installments.Set:
		verr.add("formData.installments", "is required for card payments")
	case !installments.Valid:
		verr.add("formData.installments", "must be an integer")
	case installments.Value < 1:
		verr.add("formData.installments", "must be at least 1")
	default:
		request.Installments = installments.Value
	}

	if !formData.IssuerID.Set || formData.IssuerID.Value == "" {
		verr.add("formData.issuer_id", "is required for card payments")
	}
	request.IssuerID = formData.IssuerID.Value
}

// resolveIdentification picks the payer document from formData.payer first,
// falling back to the top-level payer field by field. The result is atomic:
// both type and number, or nil. A number with no resolvable type gets the
// configured default document type.
func (s *CheckoutService) resolveIdentification(input requests.CheckoutInput) *mercadopago.Identification {
	var idType, idNumber string

	if input.FormData != nil && input.FormData.Payer != nil && input.FormData.Payer.Identification != nil {
		idType = input.FormData.Payer.Identification.Type
		idNumber = input.FormData.Payer.Identification.Number
	}
	if input.Payer != nil && input.Payer.Identification != nil {
		if idType == "" {
			idType = input.Payer.Identification.Type
		}
		if idNumber == "" {
			idNumber = input.Payer.Identification.Number
		}
	}

	if idNumber == "" {
		return nil
	}
	if idType == "" {
		idType = s.config.DefaultDocumentType
	}
	return &mercadopago.Identification{Type: idType, Number: idNumber}
}

// dispatchConfirmation fires the order confirmation email without tying it to
// the request lifecycle. Failures are logged and never reach the caller.
func (s *CheckoutService) dispatchConfirmation(ctx context.Context, input requests.CheckoutInput, payment *mercadopago.Payment) {
	if s.notifier == nil || input.Order == nil {
		return
	}

	// Only addresses the buyer actually supplied; the fallback payer email
	// exists to satisfy the processor, not to receive mail.
	recipient := input.Order.CustomerEmail
	if recipient == "" && input.Payer != nil {
		recipient = input.Payer.Email
	}
	if recipient == "" {
		s.logger.Debug("skipping order confirmation, no recipient supplied",
			zap.Int64("payment_id", payment.ID))
		return
	}

	params := OrderConfirmationParams{
		To:            recipient,
		CustomerName:  s.config.FallbackPayerName,
		PaymentID:     payment.ID,
		PaymentStatus: payment.Status,
		Amount:        payment.TransactionAmount,
	}
	if input.Payer != nil && input.Payer.FirstName != "" {
		params.CustomerName = input.Payer.FirstName
	}
	for _, item := range input.Order.Items {
		quantity := item.Quantity.Value
		if !item.Quantity.Valid || quantity < 1 {
			quantity = 1
		}
		params.Items = append(params.Items, OrderConfirmationItem{
			Title:     item.Title,
			Quantity:  quantity,
			UnitPrice: item.UnitPrice.Value,
		})
	}

	// Detached from the inbound request: the email may still be in flight
	// after the HTTP response is sent.
	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()

		if err := s.notifier.SendOrderConfirmation(sendCtx, params); err != nil {
			s.logger.Warn("order confirmation dispatch failed",
				zap.Error(err),
				zap.String("to", recipient),
				zap.Int64("payment_id", payment.ID))
		}
	}()
}
