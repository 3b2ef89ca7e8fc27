package services

import (
	"context"
	"net/http"

	"motolease/internal/usecase/interfaces"
)

// InvoiceClient calls the invoice service to issue tax documents.
//
// Env vars:
//   - INVOICE_SERVICE_URL (default: http://invoice-service:8080)

type InvoiceClient struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.IInvoiceIssuer = (*InvoiceClient)(nil)

func NewInvoiceClient() *InvoiceClient {
	return &InvoiceClient{
		client:  newHTTPClient(),
		baseURL: baseURLFromEnv("INVOICE_SERVICE_URL", "http://invoice-service:8080"),
	}
}

func (c *InvoiceClient) IssueInvoice(ctx context.Context, req interfaces.InvoiceRequest) error {
	return postJSON(ctx, c.client, c.baseURL+"/v1/invoices", req)
}
