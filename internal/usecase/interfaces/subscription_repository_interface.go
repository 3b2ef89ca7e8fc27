package interfaces

import (
	"context"

	"motolease/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for
// RecurringSubscription.

type ISubscriptionRepository interface {
	GetByProviderSubscriptionID(ctx context.Context, providerSubscriptionID string) (entities.RecurringSubscription, error)
	UpdateSyncedStatus(ctx context.Context, id string, syncedStatus string) error
}
