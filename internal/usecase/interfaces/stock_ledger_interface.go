package interfaces

import "context"

const StockDirectionOut = "OUT"

// StockMovement is one stock-ledger entry request. Movements are issued one
// per order line, never batched, so a partial failure leaves an individually
// retriable trail.

type StockMovement struct {
	PartID     string `json:"part_id"`
	Direction  string `json:"direction"`
	Quantity   int    `json:"quantity"`
	OriginType string `json:"origin_type"`
	OriginID   string `json:"origin_id"`
}

// IStockLedger abstracts the external inventory service.
type IStockLedger interface {
	RecordStockMovement(ctx context.Context, movement StockMovement) error
}
