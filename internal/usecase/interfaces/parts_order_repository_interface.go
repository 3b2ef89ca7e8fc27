package interfaces

import (
	"context"

	"motolease/internal/domain/entities"
)

// IPartsOrderRepository abstracts DynamoDB persistence for PartsOrder.

type IPartsOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.PartsOrder, error)
	// MarkPaid transitions PAYMENT_PENDING -> PAID and stamps the provider
	// payment id. applied=false when the order already left PAYMENT_PENDING.
	MarkPaid(ctx context.Context, id string, providerPaymentID string) (applied bool, err error)
}
