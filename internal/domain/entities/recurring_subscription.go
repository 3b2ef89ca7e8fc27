package entities

import "time"

// RecurringSubscription mirrors the provider's recurring-billing object
// (preapproval). SyncedStatus is the provider status string as last seen; it
// is overwritten verbatim on every subscription notification, no mapping.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//   - GSI1 (provider_subscription_id-index): provider_subscription_id

type RecurringSubscription struct {
	ID                     string    `json:"id"`
	ContractID             string    `json:"contract_id"`
	ProviderSubscriptionID string    `json:"provider_subscription_id"`
	SyncedStatus           string    `json:"synced_status"`
	UpdatedAt              time.Time `json:"updated_at"`
}
