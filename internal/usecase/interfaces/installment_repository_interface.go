package interfaces

import (
	"context"
	"time"

	"motolease/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB persistence for Installment.

type IInstallmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Installment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.Installment, error)
	// MarkPaid transitions PENDING/OVERDUE -> PAID with paid amount, paid date
	// and provider payment id. applied=false when the installment is already
	// settled.
	MarkPaid(ctx context.Context, id string, paidAmount float64, paidAt time.Time, providerPaymentID string) (applied bool, err error)
}
