package http

import (
	"github.com/gin-gonic/gin"
	"github.com/hatien/petmart/internal/adapter/config"
	"github.com/hatien/petmart/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	h := NewHandler(logger)
	router.Use(newServerMetrics().middleware())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metricsHandler())

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			orders := user.Group("/orders")
			{
				orders.Use(authCheck(tokenService, h))
				orders.POST("", orderHandler.Checkout)
				orders.GET("", orderHandler.ListOrders)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.POST("/:id/cancel", orderHandler.CancelOrder)
				orders.GET("/:id/qr", paymentHandler.QRPayment)
				orders.POST("/:id/confirm-transfer", paymentHandler.ConfirmTransfer)
				orders.POST("/:id/payment-url", paymentHandler.PaymentURL)
			}
		}

		// gateway callbacks authenticate through their signatures
		payment := api.Group("/payment")
		{
			payment.GET("/vnpay/return", paymentHandler.VNPayReturn)
			payment.GET("/vnpay/ipn", paymentHandler.VNPayIPN)
			payment.POST("/momo/return", paymentHandler.MoMoReturn)
			payment.POST("/momo/ipn", paymentHandler.MoMoIPN)
		}

		admin := api.Group("/admin")
		{
			admin.Use(authCheck(tokenService, h), adminCheck(h))
			admin.GET("/orders/awaiting-payment", paymentHandler.AwaitingPayment)
			admin.POST("/orders/:id/confirm-payment", paymentHandler.AdminConfirmPayment)
			admin.POST("/orders/:id/status", orderHandler.UpdateStatus)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
