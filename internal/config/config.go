package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Stage constants
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// Config holds all process-wide settings. It is loaded once at startup and
// injected into services at construction time; nothing reads the environment
// after Load returns.
type Config struct {
	Stage string
	Port  string

	// Payment processor
	MercadoPagoAccessToken string
	MercadoPagoBaseURL     string
	PaymentTimeout         time.Duration

	// Checkout normalization defaults
	DefaultDescription  string
	DefaultDocumentType string
	FallbackPayerEmail  string
	FallbackPayerName   string

	// Notification email
	ResendAPIKey string
	FromEmail    string
	FromName     string

	// Admin login
	AdminPassword string
}

// IsValidStage reports whether s is a recognized deployment stage.
func IsValidStage(s string) bool {
	return s == StageProd || s == StageDev || s == StageLocal
}

// Load builds a Config from the process environment, applying defaults for
// everything except the processor credential.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:                  getEnvWithDefault("STAGE", StageLocal),
		Port:                   getEnvWithDefault("PORT", "3000"),
		MercadoPagoAccessToken: os.Getenv("MP_ACCESS_TOKEN"),
		MercadoPagoBaseURL:     getEnvWithDefault("MP_BASE_URL", "https://api.mercadopago.com"),
		PaymentTimeout:         5 * time.Second,
		DefaultDescription:     getEnvWithDefault("DEFAULT_DESCRIPTION", "Produto Five Store"),
		DefaultDocumentType:    getEnvWithDefault("DEFAULT_DOCUMENT_TYPE", "CPF"),
		FallbackPayerEmail:     getEnvWithDefault("FALLBACK_PAYER_EMAIL", "cliente@fivestore.com.br"),
		FallbackPayerName:      getEnvWithDefault("FALLBACK_PAYER_NAME", "Cliente"),
		ResendAPIKey:           os.Getenv("RESEND_API_KEY"),
		FromEmail:              getEnvWithDefault("EMAIL_FROM_ADDRESS", "pedidos@fivestore.com.br"),
		FromName:               getEnvWithDefault("EMAIL_FROM_NAME", "Five Store"),
		AdminPassword:          os.Getenv("ADMIN_PASSWORD"),
	}

	if !IsValidStage(cfg.Stage) {
		return nil, errors.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			cfg.Stage, StageProd, StageDev, StageLocal)
	}

	if cfg.MercadoPagoAccessToken == "" {
		return nil, errors.New("MP_ACCESS_TOKEN environment variable is required")
	}

	if ms := os.Getenv("PAYMENT_TIMEOUT_MS"); ms != "" {
		parsed, err := strconv.Atoi(ms)
		if err != nil || parsed <= 0 {
			return nil, errors.Errorf("invalid PAYMENT_TIMEOUT_MS %q", ms)
		}
		cfg.PaymentTimeout = time.Duration(parsed) * time.Millisecond
	}

	return cfg, nil
}

// getEnvWithDefault returns environment variable value or default
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
