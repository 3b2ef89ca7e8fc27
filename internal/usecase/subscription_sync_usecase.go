package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"motolease/internal/usecase/interfaces"
)

var ErrInvalidProviderSubscriptionID = errors.New("invalid provider subscription id")

// ISubscriptionSyncUseCase handles the subscription-class notification:
// fetch the provider-side status and overwrite the local mirror, if any.

type ISubscriptionSyncUseCase interface {
	SyncByProviderID(ctx context.Context, providerSubscriptionID string) error
}

type SubscriptionSyncUseCase struct {
	provider      interfaces.IPaymentProvider
	subscriptions interfaces.ISubscriptionRepository
}

var _ ISubscriptionSyncUseCase = (*SubscriptionSyncUseCase)(nil)

func NewSubscriptionSyncUseCase(provider interfaces.IPaymentProvider, subscriptions interfaces.ISubscriptionRepository) *SubscriptionSyncUseCase {
	return &SubscriptionSyncUseCase{provider: provider, subscriptions: subscriptions}
}

func (u *SubscriptionSyncUseCase) SyncByProviderID(ctx context.Context, providerSubscriptionID string) error {
	providerSubscriptionID = strings.TrimSpace(providerSubscriptionID)
	if providerSubscriptionID == "" {
		return ErrInvalidProviderSubscriptionID
	}

	detail, err := u.provider.FetchSubscription(ctx, providerSubscriptionID)
	if err != nil {
		return fmt.Errorf("fetch subscription detail provider_subscription_id=%s: %w", providerSubscriptionID, err)
	}

	sub, err := u.subscriptions.GetByProviderSubscriptionID(ctx, providerSubscriptionID)
	if err != nil {
		return fmt.Errorf("load subscription provider_subscription_id=%s: %w", providerSubscriptionID, err)
	}
	if sub.ID == "" {
		// Not tracked by this installation; not an error.
		log.Printf("[subscription][usecase] no local record provider_subscription_id=%s", providerSubscriptionID)
		return nil
	}

	if err := u.subscriptions.UpdateSyncedStatus(ctx, sub.ID, detail.Status); err != nil {
		return fmt.Errorf("update synced status subscription_id=%s: %w", sub.ID, err)
	}
	log.Printf("[subscription][usecase] status synced subscription_id=%s provider_subscription_id=%s status=%s", sub.ID, providerSubscriptionID, detail.Status)
	return nil
}
