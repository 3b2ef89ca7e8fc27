package handlers

import (
	"log"
	"net/http"

	"motolease/internal/adapter/http/dto/request"
	"motolease/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	notificationTypePayment      = "payment"
	notificationTypeSubscription = "subscription_preapproval"
)

// WebhookHandler is the dispatch and containment boundary for provider
// notifications. Whatever happens inside, the provider gets HTTP 200: a
// non-200 would make it redeliver indefinitely, and the pipeline is
// idempotent, so a failed attempt is safely retried by the next notification
// for the same id. This is the only place errors are swallowed.

type WebhookHandler struct {
	reconcile     usecase.IPaymentReconcileUseCase
	subscriptions usecase.ISubscriptionSyncUseCase
}

func NewWebhookHandler(reconcile usecase.IPaymentReconcileUseCase, subscriptions usecase.ISubscriptionSyncUseCase) *WebhookHandler {
	return &WebhookHandler{reconcile: reconcile, subscriptions: subscriptions}
}

// HandleNotification ingests one provider notification. Malformed bodies and
// unknown notification types are acknowledged without further processing.
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[webhook][handler] recovered from panic err=%v", r)
			if !c.Writer.Written() {
				c.JSON(http.StatusOK, ackBody())
			}
		}
	}()

	var req request.WebhookNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[webhook][handler] malformed body; acknowledging err=%v", err)
		c.JSON(http.StatusOK, ackBody())
		return
	}

	dataID := req.Data.ID.String()
	log.Printf("[webhook][handler] notification received type=%s data_id=%s", req.Type, dataID)

	var err error
	switch req.Type {
	case notificationTypePayment:
		err = h.reconcile.ReconcilePayment(c.Request.Context(), dataID)
	case notificationTypeSubscription:
		err = h.subscriptions.SyncByProviderID(c.Request.Context(), dataID)
	default:
		log.Printf("[webhook][handler] unknown notification type; acknowledging type=%s data_id=%s", req.Type, dataID)
	}

	if err != nil {
		// Logged with full context and deliberately not surfaced to the
		// provider; see the containment note on the type.
		log.Printf("[webhook][handler] processing failed type=%s data_id=%s err=%v", req.Type, dataID, err)
	}

	c.JSON(http.StatusOK, ackBody())
}

func ackBody() gin.H {
	return gin.H{"status": "ok"}
}
