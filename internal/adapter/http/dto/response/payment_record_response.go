package response

import (
	"time"

	"motolease/internal/domain/entities"
)

type PaymentRecordResponse struct {
	ProviderPaymentID string    `json:"provider_payment_id"`
	Amount            float64   `json:"amount"`
	NetAmount         float64   `json:"net_amount"`
	FeeAmount         float64   `json:"fee_amount"`
	Status            string    `json:"status"`
	PaymentMethodID   string    `json:"payment_method_id"`
	PaymentTypeID     string    `json:"payment_type_id"`
	Reference         string    `json:"reference"`
	DateCreated       time.Time `json:"date_created"`
	DateApproved      time.Time `json:"date_approved"`
	ReceivedAt        time.Time `json:"received_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ProviderPaymentID: rec.ProviderPaymentID,
		Amount:            rec.Amount,
		NetAmount:         rec.NetAmount,
		FeeAmount:         rec.FeeAmount,
		Status:            string(rec.Status),
		PaymentMethodID:   rec.PaymentMethodID,
		PaymentTypeID:     rec.PaymentTypeID,
		Reference:         rec.Reference,
		DateCreated:       rec.DateCreated,
		DateApproved:      rec.DateApproved,
		ReceivedAt:        rec.ReceivedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}
