package interfaces

import "context"

// InvoiceRequest asks the invoice service to issue a tax document for one
// reconciled payment.

type InvoiceRequest struct {
	PaymentID   string  `json:"payment_id"`
	SubjectID   string  `json:"subject_id"`
	SubjectType string  `json:"subject_type"`
	CustomerID  string  `json:"customer_id"`
	Amount      float64 `json:"amount"`
}

// IInvoiceIssuer abstracts the external invoice service. Fire-and-forget from
// the reconciler's perspective; the service's own idempotency is its concern.
type IInvoiceIssuer interface {
	IssueInvoice(ctx context.Context, req InvoiceRequest) error
}
