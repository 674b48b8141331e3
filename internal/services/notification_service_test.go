package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_SendOrderConfirmation_RequiresRecipient(t *testing.T) {
	service := NewNotificationService("re_test_key", "pedidos@fivestore.com.br", "Five Store", nil)

	err := service.SendOrderConfirmation(context.Background(), OrderConfirmationParams{
		CustomerName: "Maria",
		PaymentID:    42,
		Amount:       99.9,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recipient")
}

func TestOrderConfirmationItem_Total(t *testing.T) {
	item := OrderConfirmationItem{Title: "Camiseta", Quantity: 3, UnitPrice: 49.9}
	assert.InDelta(t, 149.7, item.Total(), 0.0001)
}

func TestRenderOrderConfirmationTemplates(t *testing.T) {
	params := OrderConfirmationParams{
		To:            "maria@example.com",
		CustomerName:  "Maria",
		PaymentID:     123456,
		PaymentStatus: "approved",
		Amount:        149.7,
		Items: []OrderConfirmationItem{
			{Title: "Camiseta", Quantity: 2, UnitPrice: 49.9},
			{Title: "Boné", Quantity: 1, UnitPrice: 49.9},
		},
	}

	t.Run("html version", func(t *testing.T) {
		body, err := renderTemplate(orderConfirmationHTML, params)
		require.NoError(t, err)

		assert.Contains(t, body, "Olá Maria")
		assert.Contains(t, body, "R$ 149.70")
		assert.Contains(t, body, "pagamento #123456")
		assert.Contains(t, body, "approved")
		assert.Contains(t, body, "Camiseta")
		assert.Contains(t, body, "R$ 99.80")
		assert.Contains(t, body, "Boné")
	})

	t.Run("text version", func(t *testing.T) {
		body, err := renderTemplate(orderConfirmationText, params)
		require.NoError(t, err)

		assert.Contains(t, body, "Olá Maria")
		assert.Contains(t, body, "Camiseta x2: R$ 99.80")
		assert.Contains(t, body, "Boné x1: R$ 49.90")
	})

	t.Run("no items omits the order table", func(t *testing.T) {
		bare := params
		bare.Items = nil

		body, err := renderTemplate(orderConfirmationHTML, bare)
		require.NoError(t, err)

		assert.NotContains(t, body, "<table>")
		assert.Contains(t, body, "Olá Maria")
	})
}
