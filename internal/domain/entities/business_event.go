package entities

import "time"

// BusinessEvent is the append-only audit record of a reconciliation outcome;
// one per meaningful state transition. Downstream fan-out reads from this
// store, outside this service.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)

type BusinessEvent struct {
	ID         string                 `json:"id"`
	Operation  string                 `json:"operation"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	Actor      string                 `json:"actor"`
	CreatedAt  time.Time              `json:"created_at"`
}
