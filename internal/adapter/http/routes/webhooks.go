package routes

import (
	"motolease/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks       = "/webhooks"
	PathPaymentRecords = "/payment-records"
)

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		// The provider retries on any non-200; the handler owns the
		// always-acknowledge policy.
		webhooks.POST("/mercadopago", webhookHandler.HandleNotification)
	}
}

func addPaymentRecordRoutes(rg *gin.RouterGroup, recordHandler *handlers.PaymentRecordHandler) {
	records := rg.Group(PathPaymentRecords)
	{
		records.GET("/:provider_payment_id", recordHandler.GetByProviderPaymentID)
	}
}
