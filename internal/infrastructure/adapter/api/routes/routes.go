package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/handler"
	"github.com/khanut-app/backend/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	transactionHandler *handler.TransactionHandler,
	paymentHandler *handler.PaymentHandler,
	jwtSecret string,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(middleware.Authenticate(jwtSecret, logger))

	// Customer-facing routes behind the customer-role gate
	customer := api.Group("")
	customer.Use(middleware.RequireCustomer(logger))
	{
		// GET /api/customer/transactions
		customer.GET("/customer/transactions", transactionHandler.ListCustomerTransactions)

		// POST /api/payment/initialize
		customer.POST("/payment/initialize", paymentHandler.InitializePayment)

		// POST /api/payment/mobile/initialize
		customer.POST("/payment/mobile/initialize", paymentHandler.InitializeMobilePayment)

		// GET /api/payment/verify/:tx_ref
		customer.GET("/payment/verify/:tx_ref", paymentHandler.VerifyPayment)

		// POST /api/payment/direct-charge
		customer.POST("/payment/direct-charge", paymentHandler.ProcessDirectCharge)

		// POST /api/payment/direct-charge/authorize
		customer.POST("/payment/direct-charge/authorize", paymentHandler.AuthorizeDirectCharge)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
