package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fivestore/fivestore-api/internal/client/mercadopago"
	"github.com/fivestore/fivestore-api/internal/config"
	"github.com/fivestore/fivestore-api/internal/handlers"
	"github.com/fivestore/fivestore-api/internal/logger"
	"github.com/fivestore/fivestore-api/internal/middleware"
	"github.com/fivestore/fivestore-api/internal/services"
)

// NewRouter wires the services, handlers and middleware into a gin engine.
// Everything the handlers need comes from the supplied configuration; nothing
// below this point reads the environment.
func NewRouter(cfg *config.Config) *gin.Engine {
	paymentsClient := mercadopago.NewClient(
		cfg.MercadoPagoAccessToken,
		logger.Log,
		mercadopago.WithBaseURL(cfg.MercadoPagoBaseURL),
		mercadopago.WithTimeout(cfg.PaymentTimeout),
	)

	var notifier services.OrderNotifier
	if cfg.ResendAPIKey != "" {
		notifier = services.NewNotificationService(cfg.ResendAPIKey, cfg.FromEmail, cfg.FromName, logger.Log)
	} else {
		logger.Warn("RESEND_API_KEY not set, order confirmation emails are disabled")
	}

	checkoutService := services.NewCheckoutService(paymentsClient, notifier, services.CheckoutConfig{
		DefaultDescription:  cfg.DefaultDescription,
		DefaultDocumentType: cfg.DefaultDocumentType,
		FallbackPayerEmail:  cfg.FallbackPayerEmail,
		FallbackPayerName:   cfg.FallbackPayerName,
		PaymentTimeout:      cfg.PaymentTimeout,
	}, logger.Log)

	common := handlers.NewCommonServices(cfg, logger.Log)
	paymentHandler := handlers.NewPaymentHandler(common, checkoutService, logger.Log)
	webhookHandler := handlers.NewWebhookHandler(logger.Log)
	adminHandler := handlers.NewAdminHandler(common, logger.Log)

	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, admin login is disabled")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	router.POST("/process_payment", paymentHandler.ProcessPayment)
	router.POST("/webhook", webhookHandler.HandleNotification)
	router.POST("/admin/login", adminHandler.Login)

	return router
}

// configureCORS returns a configured CORS middleware. The storefront is a
// static page served from anywhere, so the default is wide open; deployments
// narrow it with CORS_ALLOWED_ORIGINS.
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowAllOrigins = true
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{"X-Correlation-ID"}

	return cors.New(corsConfig)
}
