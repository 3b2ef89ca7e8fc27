package interfaces

import "context"

// IEventEmitter records one BusinessEvent per meaningful state transition and
// returns the event id. Fan-out to subscribers happens downstream of the
// event store.
type IEventEmitter interface {
	Emit(ctx context.Context, operation, entityType, entityID string, payload map[string]interface{}, actor string) (eventID string, err error)
}
