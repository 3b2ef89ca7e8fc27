package interfaces

import (
	"context"

	"motolease/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract. Contracts
// are read-only from the reconciler's perspective.

type IContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.Contract, error)
}
