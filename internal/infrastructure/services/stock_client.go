package services

import (
	"context"
	"net/http"

	"motolease/internal/usecase/interfaces"
)

// StockClient calls the inventory service to record stock movements.
//
// Env vars:
//   - STOCK_SERVICE_URL (default: http://stock-service:8080)

type StockClient struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.IStockLedger = (*StockClient)(nil)

func NewStockClient() *StockClient {
	return &StockClient{
		client:  newHTTPClient(),
		baseURL: baseURLFromEnv("STOCK_SERVICE_URL", "http://stock-service:8080"),
	}
}

func (c *StockClient) RecordStockMovement(ctx context.Context, movement interfaces.StockMovement) error {
	return postJSON(ctx, c.client, c.baseURL+"/v1/stock-movements", movement)
}
