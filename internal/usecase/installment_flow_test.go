package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase"
	"motolease/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func TestReconcilePayment_InstallmentFirstDeliversEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	inst := entities.Installment{
		ID:         "inst-1",
		ContractID: "ctr-1",
		Number:     1,
		Amount:     800,
		DueDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:     entities.InstallmentStatusPending,
	}
	contract := entities.Contract{
		ID:                "ctr-1",
		CustomerID:        "cust-1",
		VehicleID:         "veh-1",
		LoanApplicationID: "app-1",
	}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "2001").
		Return(approvedPayment("2001", "installment:inst-1:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(inst, nil)
	m.installments.EXPECT().
		MarkPaid(gomock.Any(), "inst-1", 800.0, gomock.Any(), "2001").
		Return(true, nil)
	m.contracts.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(contract, nil)
	m.invoices.EXPECT().
		IssueInvoice(gomock.Any(), interfaces.InvoiceRequest{
			PaymentID:   "2001",
			SubjectID:   "inst-1",
			SubjectType: "installment",
			CustomerID:  "cust-1",
			Amount:      800,
		}).
		Return(nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "installment.paid", "installment", "inst-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-1", nil)

	// Installment #1 side effects: vehicle handover plus application delivery.
	m.vehicles.EXPECT().
		GetByID(gomock.Any(), "veh-1").
		Return(entities.Vehicle{ID: "veh-1", Status: entities.VehicleStatusReserved}, nil)
	m.vehicles.EXPECT().
		TransitionStatus(gomock.Any(), "veh-1", entities.VehicleStatusReserved, entities.VehicleStatusRented).
		Return(true, nil)
	m.vehicles.EXPECT().
		AppendStatusHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change entities.VehicleStatusChange) error {
			if change.VehicleID != "veh-1" || change.FromStatus != entities.VehicleStatusReserved || change.ToStatus != entities.VehicleStatusRented {
				t.Fatalf("unexpected history entry: %+v", change)
			}
			if change.Actor != usecase.ReconcilerActor {
				t.Fatalf("expected actor %q, got %q", usecase.ReconcilerActor, change.Actor)
			}
			return nil
		})
	m.events.EXPECT().
		Emit(gomock.Any(), "vehicle.rented", "vehicle", "veh-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-2", nil)
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "app-1").
		Return(entities.LoanApplication{ID: "app-1", Status: entities.LoanApplicationStatusApproved}, nil)
	m.loanApplications.EXPECT().MarkDelivered(gomock.Any(), "app-1").Return(true, nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "loan_application.delivered", "loan_application", "app-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-3", nil)

	if err := uc.ReconcilePayment(context.Background(), "2001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_InstallmentLaterNumberSkipsDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	inst := entities.Installment{
		ID:         "inst-5",
		ContractID: "ctr-1",
		Number:     5,
		Amount:     800,
		Status:     entities.InstallmentStatusOverdue,
	}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "2002").
		Return(approvedPayment("2002", "installment:inst-5:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().GetByID(gomock.Any(), "inst-5").Return(inst, nil)
	m.installments.EXPECT().
		MarkPaid(gomock.Any(), "inst-5", 800.0, gomock.Any(), "2002").
		Return(true, nil)
	m.contracts.EXPECT().
		GetByID(gomock.Any(), "ctr-1").
		Return(entities.Contract{ID: "ctr-1", CustomerID: "cust-1", VehicleID: "veh-1"}, nil)
	m.invoices.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "installment.paid", "installment", "inst-5", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-1", nil)

	// No vehicle or loan application calls for installment #5.
	if err := uc.ReconcilePayment(context.Background(), "2002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_InstallmentAlreadySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	paidAt := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "2003").
		Return(approvedPayment("2003", "installment:inst-5:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().
		GetByID(gomock.Any(), "inst-5").
		Return(entities.Installment{
			ID:         "inst-5",
			ContractID: "ctr-1",
			Number:     5,
			Status:     entities.InstallmentStatusPaid,
			PaidAt:     &paidAt,
		}, nil)

	// A settled later installment has no delivery side effects to re-check;
	// the duplicate ends the flow before any mutation.
	if err := uc.ReconcilePayment(context.Background(), "2003"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_InstallmentDuplicateAfterPartialFailureConverges(t *testing.T) {
	// First delivery marked installment #1 paid but crashed before the
	// handover. The redelivery sees PAID and must still finish the delivery
	// side effects.
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	contract := entities.Contract{
		ID:                "ctr-1",
		CustomerID:        "cust-1",
		VehicleID:         "veh-1",
		LoanApplicationID: "app-1",
	}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "9001").
		Return(approvedPayment("9001", "installment:inst-1:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().
		GetByID(gomock.Any(), "inst-1").
		Return(entities.Installment{
			ID:         "inst-1",
			ContractID: "ctr-1",
			Number:     1,
			Status:     entities.InstallmentStatusPaid,
		}, nil)
	m.contracts.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(contract, nil)
	m.vehicles.EXPECT().
		GetByID(gomock.Any(), "veh-1").
		Return(entities.Vehicle{ID: "veh-1", Status: entities.VehicleStatusReserved}, nil)
	m.vehicles.EXPECT().
		TransitionStatus(gomock.Any(), "veh-1", entities.VehicleStatusReserved, entities.VehicleStatusRented).
		Return(true, nil)
	m.vehicles.EXPECT().AppendStatusHistory(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "vehicle.rented", "vehicle", "veh-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-1", nil)
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "app-1").
		Return(entities.LoanApplication{ID: "app-1", Status: entities.LoanApplicationStatusApproved}, nil)
	m.loanApplications.EXPECT().MarkDelivered(gomock.Any(), "app-1").Return(true, nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "loan_application.delivered", "loan_application", "app-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-2", nil)

	// No second installment.paid invoice or event: MarkPaid is not re-run.
	if err := uc.ReconcilePayment(context.Background(), "9001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_InstallmentDuplicateAfterFullConvergenceReadsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	contract := entities.Contract{
		ID:                "ctr-1",
		CustomerID:        "cust-1",
		VehicleID:         "veh-1",
		LoanApplicationID: "app-1",
	}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "9002").
		Return(approvedPayment("9002", "installment:inst-1:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().
		GetByID(gomock.Any(), "inst-1").
		Return(entities.Installment{
			ID:         "inst-1",
			ContractID: "ctr-1",
			Number:     1,
			Status:     entities.InstallmentStatusPaid,
		}, nil)
	m.contracts.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(contract, nil)
	m.vehicles.EXPECT().
		GetByID(gomock.Any(), "veh-1").
		Return(entities.Vehicle{ID: "veh-1", Status: entities.VehicleStatusRented}, nil)
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "app-1").
		Return(entities.LoanApplication{ID: "app-1", Status: entities.LoanApplicationStatusDelivered}, nil)

	// Everything already converged: reads only, zero mutations or events.
	if err := uc.ReconcilePayment(context.Background(), "9002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_InstallmentRaceLoserStillConverges(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	contract := entities.Contract{ID: "ctr-1", CustomerID: "cust-1", VehicleID: "veh-1"}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "9003").
		Return(approvedPayment("9003", "installment:inst-1:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().
		GetByID(gomock.Any(), "inst-1").
		Return(entities.Installment{
			ID:         "inst-1",
			ContractID: "ctr-1",
			Number:     1,
			Status:     entities.InstallmentStatusPending,
		}, nil)
	// A concurrent delivery won the MarkPaid CAS; this one still re-checks
	// the delivery side effects instead of bailing out.
	m.installments.EXPECT().
		MarkPaid(gomock.Any(), "inst-1", 800.0, gomock.Any(), "9003").
		Return(false, nil)
	m.contracts.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(contract, nil)
	m.vehicles.EXPECT().
		GetByID(gomock.Any(), "veh-1").
		Return(entities.Vehicle{ID: "veh-1", Status: entities.VehicleStatusRented}, nil)

	if err := uc.ReconcilePayment(context.Background(), "9003"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_InstallmentContractMismatchUsesOwnContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	// The reference names ctr-OTHER but the installment belongs to ctr-1; the
	// stored contract id wins.
	inst := entities.Installment{
		ID:         "inst-9",
		ContractID: "ctr-1",
		Number:     3,
		Status:     entities.InstallmentStatusPending,
	}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "2004").
		Return(approvedPayment("2004", "installment:inst-9:contract:ctr-OTHER", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().GetByID(gomock.Any(), "inst-9").Return(inst, nil)
	m.installments.EXPECT().
		MarkPaid(gomock.Any(), "inst-9", 800.0, gomock.Any(), "2004").
		Return(true, nil)
	m.contracts.EXPECT().
		GetByID(gomock.Any(), "ctr-1").
		Return(entities.Contract{ID: "ctr-1", CustomerID: "cust-1"}, nil)
	m.invoices.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "installment.paid", "installment", "inst-9", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-1", nil)

	if err := uc.ReconcilePayment(context.Background(), "2004"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReconcilePayment_InstallmentNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "2005").
		Return(approvedPayment("2005", "installment:ghost:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Installment{}, nil)

	if err := uc.ReconcilePayment(context.Background(), "2005"); !errors.Is(err, usecase.ErrInstallmentNotFound) {
		t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
	}
}

func TestReconcilePayment_InstallmentVehicleNotReserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, uc := newReconcileMocks(ctrl)

	inst := entities.Installment{
		ID:         "inst-1",
		ContractID: "ctr-1",
		Number:     1,
		Status:     entities.InstallmentStatusPending,
	}
	contract := entities.Contract{ID: "ctr-1", CustomerID: "cust-1", VehicleID: "veh-1", LoanApplicationID: "app-1"}

	m.provider.EXPECT().
		FetchPayment(gomock.Any(), "2006").
		Return(approvedPayment("2006", "installment:inst-1:contract:ctr-1", 800), nil)
	m.expectUpsert()
	m.installments.EXPECT().GetByID(gomock.Any(), "inst-1").Return(inst, nil)
	m.installments.EXPECT().
		MarkPaid(gomock.Any(), "inst-1", 800.0, gomock.Any(), "2006").
		Return(true, nil)
	m.contracts.EXPECT().GetByID(gomock.Any(), "ctr-1").Return(contract, nil)
	m.invoices.EXPECT().IssueInvoice(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().
		Emit(gomock.Any(), "installment.paid", "installment", "inst-1", gomock.Any(), usecase.ReconcilerActor).
		Return("evt-1", nil)

	// Vehicle already RENTED from a prior partial run: no transition, no
	// history, no vehicle event. The application step still re-checks.
	m.vehicles.EXPECT().
		GetByID(gomock.Any(), "veh-1").
		Return(entities.Vehicle{ID: "veh-1", Status: entities.VehicleStatusRented}, nil)
	m.loanApplications.EXPECT().
		GetByID(gomock.Any(), "app-1").
		Return(entities.LoanApplication{ID: "app-1", Status: entities.LoanApplicationStatusDelivered}, nil)

	if err := uc.ReconcilePayment(context.Background(), "2006"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
