package interfaces

import (
	"context"

	"motolease/internal/domain/entities"
)

// ILoanApplicationRepository abstracts DynamoDB persistence for LoanApplication.
//
// The Mark* methods are conditional state transitions: they apply only when
// the application is currently in the expected source state and report
// applied=false (not an error) otherwise. Concurrent duplicate deliveries
// therefore converge without locking.

type ILoanApplicationRepository interface {
	GetByID(ctx context.Context, id string) (entities.LoanApplication, error)
	// MarkPaid transitions PAYMENT_PENDING -> PAID and stamps the provider
	// payment id.
	MarkPaid(ctx context.Context, id string, providerPaymentID string) (applied bool, err error)
	// MarkDelivered transitions APPROVED -> DELIVERED.
	MarkDelivered(ctx context.Context, id string) (applied bool, err error)
}
