package services

import (
	"context"
	"net/http"

	"motolease/internal/usecase/interfaces"
)

// EndOfPlanClient triggers the ownership-transfer process once a lease-to-own
// contract is fully paid.
//
// Env vars:
//   - FLEET_SERVICE_URL (default: http://fleet-service:8080)

type EndOfPlanClient struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.IOwnershipTransfer = (*EndOfPlanClient)(nil)

func NewEndOfPlanClient() *EndOfPlanClient {
	return &EndOfPlanClient{
		client:  newHTTPClient(),
		baseURL: baseURLFromEnv("FLEET_SERVICE_URL", "http://fleet-service:8080"),
	}
}

func (c *EndOfPlanClient) ProcessEndOfPlan(ctx context.Context, contractID string, actor string) error {
	body := map[string]string{"contract_id": contractID, "actor": actor}
	return postJSON(ctx, c.client, c.baseURL+"/v1/end-of-plan", body)
}
