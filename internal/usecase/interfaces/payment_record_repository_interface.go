package interfaces

import (
	"context"

	"motolease/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
//
// Upsert is keyed by provider payment id: insert if new, otherwise update
// status/amount fields in place. Idempotent by construction; it must complete
// before any flow reconciliation proceeds.

type IPaymentRecordRepository interface {
	Upsert(ctx context.Context, record entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.PaymentRecord, error)
}
