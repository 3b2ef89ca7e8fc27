package interfaces

import (
	"context"
	"errors"
	"time"
)

// Provider error kinds. Implementations wrap these so callers can classify
// with errors.Is without knowing the SDK.
var (
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrProviderNotFound    = errors.New("payment provider resource not found")
)

// ProviderPayment is the fetched detail of one provider-side payment. Status
// carries the raw provider vocabulary; mapping to the internal enum happens in
// the use case layer.

type ProviderPayment struct {
	ProviderPaymentID string
	Status            string
	Amount            float64
	NetAmount         float64
	FeeAmount         float64
	Reference         string
	PaymentMethodID   string
	PaymentTypeID     string
	DateCreated       time.Time
	DateApproved      time.Time
}

// ProviderSubscription is the fetched detail of one recurring-billing
// subscription (preapproval).

type ProviderSubscription struct {
	ProviderSubscriptionID string
	Status                 string
}

// IPaymentProvider is the single point of contact with the remote PSP for
// detail queries. It never initiates payments.
type IPaymentProvider interface {
	FetchPayment(ctx context.Context, providerPaymentID string) (ProviderPayment, error)
	FetchSubscription(ctx context.Context, providerSubscriptionID string) (ProviderSubscription, error)
}
