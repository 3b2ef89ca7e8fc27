package entities

import "time"

// LoanApplicationStatus represents the lifecycle of a lease application.
//
// Transitions owned by this engine:
//   - PAYMENT_PENDING -> PAID (loan-application flow, on approved payment)
//   - APPROVED -> DELIVERED (installment flow, on first installment paid)
//
// The PAID -> APPROVED step belongs to the back-office review process, not to
// payment reconciliation.

type LoanApplicationStatus string

const (
	LoanApplicationStatusPaymentPending LoanApplicationStatus = "PAYMENT_PENDING"
	LoanApplicationStatusPaid           LoanApplicationStatus = "PAID"
	LoanApplicationStatusApproved       LoanApplicationStatus = "APPROVED"
	LoanApplicationStatusDelivered      LoanApplicationStatus = "DELIVERED"
	LoanApplicationStatusCancelled      LoanApplicationStatus = "CANCELLED"
)

// LoanApplication is a pending lease application (solicitud).
//
// Storage model (DynamoDB):
//   - PK: id (string)

type LoanApplication struct {
	ID                string                `json:"id"`
	CustomerID        string                `json:"customer_id"`
	VehicleID         string                `json:"vehicle_id"`
	Status            LoanApplicationStatus `json:"status"`
	FirstMonthAmount  float64               `json:"first_month_amount"`
	ProviderPaymentID string                `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}
