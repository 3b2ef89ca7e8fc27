package payments

import (
	"context"
	"errors"
	"testing"

	"motolease/internal/usecase/interfaces"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline exceeded", context.DeadlineExceeded, interfaces.ErrProviderUnavailable},
		{"api 404 body", errors.New(`error response: {"status":404,"message":"Payment not found"}`), interfaces.ErrProviderNotFound},
		{"not_found code", errors.New("resource not_found"), interfaces.ErrProviderNotFound},
		{"server error", errors.New(`error response: {"status":500,"message":"internal error"}`), interfaces.ErrProviderUnavailable},
		{"transport error", errors.New("dial tcp: connection refused"), interfaces.ErrProviderUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyProviderError(tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("classifyProviderError(%v) = %v, want kind %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFetchPayment_NonNumericID(t *testing.T) {
	p := &MercadoPagoProvider{mockMode: false}

	_, err := p.FetchPayment(context.Background(), "not-a-number")
	if !errors.Is(err, interfaces.ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound for non-numeric id, got %v", err)
	}
}

func TestMockModePayment(t *testing.T) {
	t.Setenv("PAYMENT_PROVIDER_MOCK_REFERENCE", "loanapp:app-1")
	p := &MercadoPagoProvider{mockMode: true}

	detail, err := p.FetchPayment(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.ProviderPaymentID != "42" || detail.Status != "approved" {
		t.Fatalf("unexpected mock detail: %+v", detail)
	}
	if detail.Reference != "loanapp:app-1" {
		t.Fatalf("expected mock reference from env, got %q", detail.Reference)
	}
}
