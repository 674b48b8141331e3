package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MP_ACCESS_TOKEN", "TEST-token")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StageLocal, cfg.Stage)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "TEST-token", cfg.MercadoPagoAccessToken)
	assert.Equal(t, "https://api.mercadopago.com", cfg.MercadoPagoBaseURL)
	assert.Equal(t, 5*time.Second, cfg.PaymentTimeout)
	assert.Equal(t, "Produto Five Store", cfg.DefaultDescription)
	assert.Equal(t, "CPF", cfg.DefaultDocumentType)
	assert.Equal(t, "cliente@fivestore.com.br", cfg.FallbackPayerEmail)
	assert.Equal(t, "Cliente", cfg.FallbackPayerName)
	assert.Equal(t, "pedidos@fivestore.com.br", cfg.FromEmail)
	assert.Equal(t, "Five Store", cfg.FromName)
}

func TestLoad_MissingAccessToken(t *testing.T) {
	t.Setenv("MP_ACCESS_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MP_ACCESS_TOKEN")
}

func TestLoad_InvalidStage(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STAGE", "staging")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid STAGE")
}

func TestLoad_PaymentTimeoutOverride(t *testing.T) {
	t.Run("valid override", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PAYMENT_TIMEOUT_MS", "1500")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 1500*time.Millisecond, cfg.PaymentTimeout)
	})

	for _, bad := range []string{"abc", "0", "-200"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("PAYMENT_TIMEOUT_MS", bad)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PAYMENT_TIMEOUT_MS")
		})
	}
}

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage(StageProd))
	assert.True(t, IsValidStage(StageDev))
	assert.True(t, IsValidStage(StageLocal))
	assert.False(t, IsValidStage(""))
	assert.False(t, IsValidStage("production"))
}
