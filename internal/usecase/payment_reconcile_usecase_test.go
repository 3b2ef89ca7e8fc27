package usecase_test

import (
	"context"
	"errors"
	"testing"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase"
	"motolease/internal/usecase/interfaces"
	mock_interfaces "motolease/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reconcileMocks struct {
	provider         *mock_interfaces.MockIPaymentProvider
	records          *mock_interfaces.MockIPaymentRecordRepository
	loanApplications *mock_interfaces.MockILoanApplicationRepository
	installments     *mock_interfaces.MockIInstallmentRepository
	contracts        *mock_interfaces.MockIContractRepository
	vehicles         *mock_interfaces.MockIVehicleRepository
	partsOrders      *mock_interfaces.MockIPartsOrderRepository
	invoices         *mock_interfaces.MockIInvoiceIssuer
	stock            *mock_interfaces.MockIStockLedger
	events           *mock_interfaces.MockIEventEmitter
	endOfPlan        *mock_interfaces.MockIOwnershipTransfer
}

func newReconcileMocks(ctrl *gomock.Controller) (*reconcileMocks, *usecase.PaymentReconcileUseCase) {
	m := &reconcileMocks{
		provider:         mock_interfaces.NewMockIPaymentProvider(ctrl),
		records:          mock_interfaces.NewMockIPaymentRecordRepository(ctrl),
		loanApplications: mock_interfaces.NewMockILoanApplicationRepository(ctrl),
		installments:     mock_interfaces.NewMockIInstallmentRepository(ctrl),
		contracts:        mock_interfaces.NewMockIContractRepository(ctrl),
		vehicles:         mock_interfaces.NewMockIVehicleRepository(ctrl),
		partsOrders:      mock_interfaces.NewMockIPartsOrderRepository(ctrl),
		invoices:         mock_interfaces.NewMockIInvoiceIssuer(ctrl),
		stock:            mock_interfaces.NewMockIStockLedger(ctrl),
		events:           mock_interfaces.NewMockIEventEmitter(ctrl),
		endOfPlan:        mock_interfaces.NewMockIOwnershipTransfer(ctrl),
	}
	uc := usecase.NewPaymentReconcileUseCase(usecase.PaymentReconcileDeps{
		Provider:         m.provider,
		Records:          m.records,
		LoanApplications: m.loanApplications,
		Installments:     m.installments,
		Contracts:        m.contracts,
		Vehicles:         m.vehicles,
		PartsOrders:      m.partsOrders,
		Invoices:         m.invoices,
		Stock:            m.stock,
		Events:           m.events,
		EndOfPlan:        m.endOfPlan,
	})
	return m, uc
}

func approvedPayment(id, reference string, amount float64) interfaces.ProviderPayment {
	return interfaces.ProviderPayment{
		ProviderPaymentID: id,
		Status:            "approved",
		Amount:            amount,
		NetAmount:         amount * 0.96,
		FeeAmount:         amount * 0.04,
		Reference:         reference,
		PaymentMethodID:   "account_money",
		PaymentTypeID:     "account_money",
	}
}

// expectUpsert wires the ledger upsert to echo the incoming record, which is
// what the DynamoDB implementation does for a first delivery.
func (m *reconcileMocks) expectUpsert() {
	m.records.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
			return rec, nil
		})
}

func TestReconcilePayment_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, uc := newReconcileMocks(ctrl)

	for _, id := range []string{"", "   "} {
		if err := uc.ReconcilePayment(context.Background(), id); !errors.Is(err, usecase.ErrInvalidProviderPaymentID) {
			t.Fatalf("expected ErrInvalidProviderPaymentID for %q, got %v", id, err)
		}
	}
}

func TestReconcilePayment_ProviderFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "123").
		Return(interfaces.ProviderPayment{}, interfaces.ErrProviderUnavailable)

	err := uc.ReconcilePayment(context.Background(), "123")
	if !errors.Is(err, interfaces.ErrProviderUnavailable) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestReconcilePayment_NotApprovedStopsAfterUpsert(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		wantStatus     entities.PaymentStatus
	}{
		{"rejected", "rejected", entities.PaymentStatusRejected},
		{"pending", "pending", entities.PaymentStatusPending},
		{"unknown vocabulary", "charged_back", entities.PaymentStatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, uc := newReconcileMocks(ctrl)

			detail := approvedPayment("55", "loanapp:app-1", 1500)
			detail.Status = tt.providerStatus
			m.provider.EXPECT().FetchPayment(gomock.Any(), "55").Return(detail, nil)
			m.records.EXPECT().
				Upsert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
					if rec.Status != tt.wantStatus {
						t.Fatalf("expected upserted status %s, got %s", tt.wantStatus, rec.Status)
					}
					return rec, nil
				})

			// No repository beyond the ledger may be touched.
			if err := uc.ReconcilePayment(context.Background(), "55"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestReconcilePayment_UnrecognizedReferenceIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "77").
		Return(approvedPayment("77", "something:else:entirely", 200), nil)
	m.expectUpsert()

	if err := uc.ReconcilePayment(context.Background(), "77"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_UpsertFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	dbErr := errors.New("dynamodb unavailable")
	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "88").
		Return(approvedPayment("88", "loanapp:app-1", 100), nil)
	m.records.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(entities.PaymentRecord{}, dbErr)

	if err := uc.ReconcilePayment(context.Background(), "88"); !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped upsert error, got %v", err)
	}
}

func TestReconcilePayment_LoanApplicationPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	app := entities.LoanApplication{
		ID:               "app-1",
		CustomerID:       "cust-1",
		VehicleID:        "veh-1",
		Status:           entities.LoanApplicationStatusPaymentPending,
		FirstMonthAmount: 1500,
	}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "1001").
		Return(approvedPayment("1001", "loanapp:app-1", 1500), nil)
	m.expectUpsert()
	m.loanApplications.EXPECT().GetByID(gomock.Any(), "app-1").Return(app, nil)
	m.loanApplications.EXPECT().MarkPaid(gomock.Any(), "app-1", "1001").Return(true, nil)
	m.invoices.EXPECT().
		IssueInvoice(gomock.Any(), interfaces.InvoiceRequest{
			PaymentID:   "1001",
			SubjectID:   "app-1",
			SubjectType: "loan_application",
			CustomerID:  "cust-1",
			Amount:      1500,
		}).
		Return(nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "loan_application.paid", "loan_application", "app-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-1", nil)

	if err := uc.ReconcilePayment(context.Background(), "1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_LoanApplicationAlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "1001").
		Return(approvedPayment("1001", "loanapp:app-1", 1500), nil)
	m.expectUpsert()
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "app-1").
		Return(entities.LoanApplication{ID: "app-1", Status: entities.LoanApplicationStatusPaid}, nil)

	// Duplicate delivery: no MarkPaid, no invoice, no event.
	if err := uc.ReconcilePayment(context.Background(), "1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_LoanApplicationRaceLoser(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "1001").
		Return(approvedPayment("1001", "loanapp:app-1", 1500), nil)
	m.expectUpsert()
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "app-1").
		Return(entities.LoanApplication{ID: "app-1", Status: entities.LoanApplicationStatusPaymentPending}, nil)
	// Conditional write lost against a concurrent delivery.
	m.loanApplications.EXPECT().MarkPaid(gomock.Any(), "app-1", "1001").Return(false, nil)

	if err := uc.ReconcilePayment(context.Background(), "1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_LoanApplicationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "1001").
		Return(approvedPayment("1001", "loanapp:ghost", 1500), nil)
	m.expectUpsert()
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "ghost").
		Return(entities.LoanApplication{}, nil)

	if err := uc.ReconcilePayment(context.Background(), "1001"); !errors.Is(err, usecase.ErrLoanApplicationNotFound) {
		t.Fatalf("expected ErrLoanApplicationNotFound, got %v", err)
	}
}

func TestReconcilePayment_InvoiceFailureDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "1001").
		Return(approvedPayment("1001", "loanapp:app-1", 1500), nil)
	m.expectUpsert()
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "app-1").
		Return(entities.LoanApplication{ID: "app-1", Status: entities.LoanApplicationStatusPaymentPending}, nil)
	m.loanApplications.EXPECT().MarkPaid(gomock.Any(), "app-1", "1001").Return(true, nil)
	m.invoices.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).Return(errors.New("invoice service down"))
	m.events.EXPECT().
		Emit(gomock.Any(), "loan_application.paid", "loan_application", "app-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-1", nil)

	if err := uc.ReconcilePayment(context.Background(), "1001"); err != nil {
		t.Fatalf("invoice failure must not fail reconciliation, got %v", err)
	}
}
