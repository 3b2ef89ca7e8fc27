package entities

import "time"

// PaymentStatus is the engine-internal tri-state payment status.
//
// Provider vocabularies are wider and change without notice; everything we do
// not explicitly recognize maps to PENDING so an unknown provider status can
// never trigger a business effect.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// PaymentStatusFromProvider maps the provider status vocabulary to the
// internal enum. Pure; never fails.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved":
		return PaymentStatusApproved
	case "rejected":
		return PaymentStatusRejected
	default:
		return PaymentStatusPending
	}
}

// PaymentRecord is the local mirror of one provider-side payment.
//
// Storage model (DynamoDB):
//   - PK: provider_payment_id
//
// The provider payment id is the sole idempotency anchor: the record is
// upserted (never duplicated) per id, and flow reconcilers read it to detect
// "already processed".

type PaymentRecord struct {
	ProviderPaymentID string        `json:"provider_payment_id"`
	Amount            float64       `json:"amount"`
	NetAmount         float64       `json:"net_amount"`
	FeeAmount         float64       `json:"fee_amount"`
	Status            PaymentStatus `json:"status"`
	PaymentMethodID   string        `json:"payment_method_id"`
	PaymentTypeID     string        `json:"payment_type_id"`
	Reference         string        `json:"reference"`
	DateCreated       time.Time     `json:"date_created"`
	DateApproved      time.Time     `json:"date_approved"`
	ReceivedAt        time.Time     `json:"received_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
