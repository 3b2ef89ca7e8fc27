package entities

import "time"

// InstallmentStatus represents one scheduled payment's state. OVERDUE is set
// by the billing scheduler when the due date passes; for reconciliation both
// PENDING and OVERDUE are payable.

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "PENDING"
	InstallmentStatusOverdue InstallmentStatus = "OVERDUE"
	InstallmentStatusPaid    InstallmentStatus = "PAID"
)

// Installment is one scheduled payment (cuota) within a contract.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI1 (contract_id-index): contract_id
//
// Number is the 1-based position in the plan; installment #1 carries the
// delivery side effects (vehicle handover, application delivered).

type Installment struct {
	ID                string            `json:"id"`
	ContractID        string            `json:"contract_id"`
	Number            int               `json:"number"`
	Amount            float64           `json:"amount"`
	DueDate           time.Time         `json:"due_date"`
	Status            InstallmentStatus `json:"status"`
	PaidAmount        float64           `json:"paid_amount,omitempty"`
	PaidAt            *time.Time        `json:"paid_at,omitempty"`
	ProviderPaymentID string            `json:"provider_payment_id,omitempty"`
}

// Payable reports whether the installment can still receive a payment.
func (i Installment) Payable() bool {
	return i.Status == InstallmentStatusPending || i.Status == InstallmentStatusOverdue
}
