package routes

import (
	"github.com/kwamkid/joolz-factory-sub006/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentLinkHandler *handlers.PaymentLinkHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/links", paymentLinkHandler.CreatePaymentLink)
		payments.GET("/orders/:order_id", paymentLinkHandler.GetPaymentByOrderID)
		payments.POST("/gateway/callback", paymentLinkHandler.GatewayCallback)
	}
}
