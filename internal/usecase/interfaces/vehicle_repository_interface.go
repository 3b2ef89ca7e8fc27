package interfaces

import (
	"context"

	"motolease/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle and its
// append-only status history.

type IVehicleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	// TransitionStatus is a compare-and-swap on the status field: it applies
	// only when the vehicle is currently in from, and reports applied=false
	// otherwise.
	TransitionStatus(ctx context.Context, id string, from, to entities.VehicleStatus) (applied bool, err error)
	AppendStatusHistory(ctx context.Context, change entities.VehicleStatusChange) error
}
