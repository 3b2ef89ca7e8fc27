package interfaces

import "context"

// IOwnershipTransfer abstracts the end-of-plan process that moves vehicle
// ownership to the customer once a lease-to-own contract is fully paid.
type IOwnershipTransfer interface {
	ProcessEndOfPlan(ctx context.Context, contractID string, actor string) error
}
