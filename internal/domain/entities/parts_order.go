package entities

import "time"

// PartsOrderStatus represents the lifecycle of a spare-parts sale order.

type PartsOrderStatus string

const (
	PartsOrderStatusPaymentPending PartsOrderStatus = "PAYMENT_PENDING"
	PartsOrderStatusPaid           PartsOrderStatus = "PAID"
	PartsOrderStatusCancelled      PartsOrderStatus = "CANCELLED"
)

// PartsOrderItem is one line of a parts order, referencing a stock-bearing
// part. Stock is decremented one movement per line, never batched.

type PartsOrderItem struct {
	PartID    string  `json:"part_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PartsOrder is a spare-parts sale order (orden de venta de repuestos).
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Items are embedded in the order item; they are immutable after creation.

type PartsOrder struct {
	ID                string           `json:"id"`
	CustomerID        string           `json:"customer_id"`
	Status            PartsOrderStatus `json:"status"`
	TotalAmount       float64          `json:"total_amount"`
	Items             []PartsOrderItem `json:"items"`
	ProviderPaymentID string           `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
