package entities

import "time"

// VehicleStatus is the fleet-asset lifecycle state.

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusReserved    VehicleStatus = "RESERVED"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusSold        VehicleStatus = "SOLD"
)

// Vehicle is a fleet asset (moto).
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Status changes are additionally appended to the vehicle_status_history
// table; the entity itself only holds the current state.

type Vehicle struct {
	ID        string        `json:"id"`
	Plate     string        `json:"plate"`
	Model     string        `json:"model"`
	Status    VehicleStatus `json:"status"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// VehicleStatusChange is one append-only entry of the vehicle status history.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - GSI1 (vehicle_id-index): vehicle_id

type VehicleStatusChange struct {
	ID         string        `json:"id"`
	VehicleID  string        `json:"vehicle_id"`
	FromStatus VehicleStatus `json:"from_status"`
	ToStatus   VehicleStatus `json:"to_status"`
	Actor      string        `json:"actor"`
	ChangedAt  time.Time     `json:"changed_at"`
}
