package entities

import "time"

// Contract groups the installments of one lease and references exactly one
// vehicle and one customer. IsLeaseToOwn marks the variant where ownership
// transfers to the customer once every installment is paid.
//
// Storage model (DynamoDB):
//   - PK: id (string)

type Contract struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer_id"`
	VehicleID         string    `json:"vehicle_id"`
	LoanApplicationID string    `json:"loan_application_id"`
	IsLeaseToOwn      bool      `json:"is_lease_to_own"`
	CreatedAt         time.Time `json:"created_at"`
}
