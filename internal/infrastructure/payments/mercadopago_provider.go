package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"motolease/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// fetchTimeout bounds every detail query; on expiry the fetch is reported as
// provider-unavailable.
const fetchTimeout = 10 * time.Second

// MercadoPagoProvider is the detail fetcher for payment-class and
// subscription-class notifications. It only reads from the provider; payment
// initiation lives in other services.

type MercadoPagoProvider struct {
	payments      payment.Client
	subscriptions preapproval.Client
	mockMode      bool
}

var _ interfaces.IPaymentProvider = (*MercadoPagoProvider)(nil)

func NewMercadoPagoProvider(accessToken string) (*MercadoPagoProvider, error) {
	if isProviderMockEnabled() {
		log.Printf("[provider][mercadopago] mock mode enabled")
		return &MercadoPagoProvider{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[provider][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[provider][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[provider][mercadopago] Mercado Pago client initialized")

	return &MercadoPagoProvider{
		payments:      payment.NewClient(cfg),
		subscriptions: preapproval.NewClient(cfg),
	}, nil
}

func (p *MercadoPagoProvider) FetchPayment(ctx context.Context, providerPaymentID string) (interfaces.ProviderPayment, error) {
	if p.mockMode {
		return mockPayment(providerPaymentID), nil
	}

	numericID, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return interfaces.ProviderPayment{}, fmt.Errorf("non-numeric payment id %q: %w", providerPaymentID, interfaces.ErrProviderNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := p.payments.Get(ctx, numericID)
	if err != nil {
		log.Printf("[provider][mercadopago] payment get failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return interfaces.ProviderPayment{}, classifyProviderError(err)
	}

	feeAmount := 0.0
	for _, fee := range resp.FeeDetails {
		feeAmount += fee.Amount
	}

	return interfaces.ProviderPayment{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		Amount:            resp.TransactionAmount,
		NetAmount:         resp.TransactionDetails.NetReceivedAmount,
		FeeAmount:         feeAmount,
		Reference:         resp.ExternalReference,
		PaymentMethodID:   resp.PaymentMethodID,
		PaymentTypeID:     resp.PaymentTypeID,
		DateCreated:       resp.DateCreated,
		DateApproved:      resp.DateApproved,
	}, nil
}

func (p *MercadoPagoProvider) FetchSubscription(ctx context.Context, providerSubscriptionID string) (interfaces.ProviderSubscription, error) {
	if p.mockMode {
		return interfaces.ProviderSubscription{ProviderSubscriptionID: providerSubscriptionID, Status: "authorized"}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	resp, err := p.subscriptions.Get(ctx, providerSubscriptionID)
	if err != nil {
		log.Printf("[provider][mercadopago] preapproval get failed provider_subscription_id=%s err=%v", providerSubscriptionID, err)
		return interfaces.ProviderSubscription{}, classifyProviderError(err)
	}

	return interfaces.ProviderSubscription{
		ProviderSubscriptionID: resp.ID,
		Status:                 resp.Status,
	}, nil
}

// classifyProviderError maps SDK failures to the engine's provider error
// kinds. The SDK surfaces API errors as opaque messages, so classification is
// by substring, same trade-off as elsewhere in this codebase.
func classifyProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "not found") {
		return fmt.Errorf("%w: %v", interfaces.ErrProviderNotFound, err)
	}
	return fmt.Errorf("%w: %v", interfaces.ErrProviderUnavailable, err)
}

func mockPayment(providerPaymentID string) interfaces.ProviderPayment {
	now := time.Now().UTC()
	return interfaces.ProviderPayment{
		ProviderPaymentID: providerPaymentID,
		Status:            "approved",
		Amount:            100,
		NetAmount:         96,
		FeeAmount:         4,
		Reference:         os.Getenv("PAYMENT_PROVIDER_MOCK_REFERENCE"),
		PaymentMethodID:   "pix",
		PaymentTypeID:     "bank_transfer",
		DateCreated:       now,
		DateApproved:      now,
	}
}

func isProviderMockEnabled() bool {
	for _, key := range []string{"PAYMENT_PROVIDER_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
