package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"motolease/internal/adapter/http/handlers"
	"motolease/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *handlers.WebhookHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/webhooks/mercadopago", h.HandleNotification)
	return r
}

func postNotification(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleNotification_PaymentDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mocks.NewMockIPaymentReconcileUseCase(ctrl)
	subscriptions := mocks.NewMockISubscriptionSyncUseCase(ctrl)
	r := newWebhookRouter(handlers.NewWebhookHandler(reconcile, subscriptions))

	t.Run("numeric data id", func(t *testing.T) {
		reconcile.EXPECT().ReconcilePayment(gomock.Any(), "12345").Return(nil)

		w := postNotification(t, r, `{"type":"payment","data":{"id":12345}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quoted data id", func(t *testing.T) {
		reconcile.EXPECT().ReconcilePayment(gomock.Any(), "12345").Return(nil)

		w := postNotification(t, r, `{"type":"payment","data":{"id":"12345"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestHandleNotification_SubscriptionDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mocks.NewMockIPaymentReconcileUseCase(ctrl)
	subscriptions := mocks.NewMockISubscriptionSyncUseCase(ctrl)
	r := newWebhookRouter(handlers.NewWebhookHandler(reconcile, subscriptions))

	subscriptions.EXPECT().SyncByProviderID(gomock.Any(), "presub-1").Return(nil)

	w := postNotification(t, r, `{"type":"subscription_preapproval","data":{"id":"presub-1"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHandleNotification_MalformedBodyAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mocks.NewMockIPaymentReconcileUseCase(ctrl)
	subscriptions := mocks.NewMockISubscriptionSyncUseCase(ctrl)
	r := newWebhookRouter(handlers.NewWebhookHandler(reconcile, subscriptions))

	// No use case may be invoked for a body we cannot parse.
	w := postNotification(t, r, `{"type": "payment", "data": {`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for malformed body, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("expected ack body, got %s", w.Body.String())
	}
}

func TestHandleNotification_UnknownTypeAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mocks.NewMockIPaymentReconcileUseCase(ctrl)
	subscriptions := mocks.NewMockISubscriptionSyncUseCase(ctrl)
	r := newWebhookRouter(handlers.NewWebhookHandler(reconcile, subscriptions))

	w := postNotification(t, r, `{"type":"plan","data":{"id":"whatever"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for unknown type, got %d", w.Code)
	}
}

func TestHandleNotification_ProcessingErrorStillAcknowledged(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mocks.NewMockIPaymentReconcileUseCase(ctrl)
	subscriptions := mocks.NewMockISubscriptionSyncUseCase(ctrl)
	r := newWebhookRouter(handlers.NewWebhookHandler(reconcile, subscriptions))

	reconcile.EXPECT().
		ReconcilePayment(gomock.Any(), "500").
		Return(errors.New("provider unavailable"))

	// A failed reconciliation is contained; the provider must see 200 or it
	// redelivers forever.
	w := postNotification(t, r, `{"type":"payment","data":{"id":500}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite inner error, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("expected ack body, got %s", w.Body.String())
	}
}
