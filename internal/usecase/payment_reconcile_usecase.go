package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"motolease/internal/domain/entities"
	"motolease/internal/domain/reference"
	"motolease/internal/usecase/interfaces"
)

// ReconcilerActor identifies this engine in status history and business
// events.
const ReconcilerActor = "psp-webhook"

var (
	ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")
	ErrLoanApplicationNotFound  = errors.New("loan application not found")
	ErrInstallmentNotFound      = errors.New("installment not found")
	ErrContractNotFound         = errors.New("contract not found")
	ErrPartsOrderNotFound       = errors.New("parts order not found")
)

// IPaymentReconcileUseCase reconciles one payment-class notification against
// domain state. Safe to invoke any number of times for the same provider
// payment id: every mutation is a conditional transition.

type IPaymentReconcileUseCase interface {
	ReconcilePayment(ctx context.Context, providerPaymentID string) error
}

// PaymentReconcileDeps collects the ports of the reconciler. All fields are
// required.

type PaymentReconcileDeps struct {
	Provider         interfaces.IPaymentProvider
	Records          interfaces.IPaymentRecordRepository
	LoanApplications interfaces.ILoanApplicationRepository
	Installments     interfaces.IInstallmentRepository
	Contracts        interfaces.IContractRepository
	Vehicles         interfaces.IVehicleRepository
	PartsOrders      interfaces.IPartsOrderRepository
	Invoices         interfaces.IInvoiceIssuer
	Stock            interfaces.IStockLedger
	Events           interfaces.IEventEmitter
	EndOfPlan        interfaces.IOwnershipTransfer
}

type PaymentReconcileUseCase struct {
	deps PaymentReconcileDeps
}

var _ IPaymentReconcileUseCase = (*PaymentReconcileUseCase)(nil)

func NewPaymentReconcileUseCase(deps PaymentReconcileDeps) *PaymentReconcileUseCase {
	return &PaymentReconcileUseCase{deps: deps}
}

// ReconcilePayment runs the payment pipeline: fetch detail from the provider,
// map the status, upsert the local ledger record, resolve the reference and
// dispatch to the matching flow. Non-approved payments stop after the ledger
// upsert.
func (u *PaymentReconcileUseCase) ReconcilePayment(ctx context.Context, providerPaymentID string) error {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return ErrInvalidProviderPaymentID
	}
	log.Printf("[reconcile][usecase] start provider_payment_id=%s", providerPaymentID)

	detail, err := u.deps.Provider.FetchPayment(ctx, providerPaymentID)
	if err != nil {
		return fmt.Errorf("fetch payment detail provider_payment_id=%s: %w", providerPaymentID, err)
	}

	status := entities.PaymentStatusFromProvider(detail.Status)
	now := time.Now().UTC()
	record := entities.PaymentRecord{
		ProviderPaymentID: detail.ProviderPaymentID,
		Amount:            detail.Amount,
		NetAmount:         detail.NetAmount,
		FeeAmount:         detail.FeeAmount,
		Status:            status,
		PaymentMethodID:   detail.PaymentMethodID,
		PaymentTypeID:     detail.PaymentTypeID,
		Reference:         detail.Reference,
		DateCreated:       detail.DateCreated,
		DateApproved:      detail.DateApproved,
		ReceivedAt:        now,
		UpdatedAt:         now,
	}

	stored, err := u.deps.Records.Upsert(ctx, record)
	if err != nil {
		return fmt.Errorf("upsert payment record provider_payment_id=%s: %w", providerPaymentID, err)
	}
	log.Printf("[reconcile][usecase] ledger upserted provider_payment_id=%s status=%s reference=%q", stored.ProviderPaymentID, stored.Status, stored.Reference)

	if status != entities.PaymentStatusApproved {
		log.Printf("[reconcile][usecase] status not approved; no business mutation provider_payment_id=%s status=%s", providerPaymentID, status)
		return nil
	}

	res := reference.Resolve(detail.Reference)
	switch res.Kind {
	case reference.KindLoanApplication:
		return u.reconcileLoanApplication(ctx, res.LoanApplicationID, stored)
	case reference.KindInstallment:
		return u.reconcileInstallment(ctx, res.InstallmentID, res.ContractID, stored)
	case reference.KindRecurringContract:
		return u.reconcileRecurringCharge(ctx, res.ContractID, stored)
	case reference.KindPartsOrder:
		return u.reconcilePartsOrder(ctx, res.PartsOrderID, stored)
	default:
		// Unrecognized reference: the ledger record is the only outcome.
		log.Printf("[reconcile][usecase] no flow matched provider_payment_id=%s reference=%q", providerPaymentID, detail.Reference)
		return nil
	}
}

func (u *PaymentReconcileUseCase) emit(ctx context.Context, operation, entityType, entityID string, payload map[string]interface{}) {
	if _, err := u.deps.Events.Emit(ctx, operation, entityType, entityID, payload, ReconcilerActor); err != nil {
		log.Printf("[reconcile][usecase] event emit failed operation=%s entity_type=%s entity_id=%s err=%v", operation, entityType, entityID, err)
	}
}

func (u *PaymentReconcileUseCase) issueInvoice(ctx context.Context, req interfaces.InvoiceRequest) {
	if err := u.deps.Invoices.IssueInvoice(ctx, req); err != nil {
		log.Printf("[reconcile][usecase] invoice issuance failed payment_id=%s subject_type=%s subject_id=%s err=%v", req.PaymentID, req.SubjectType, req.SubjectID, err)
	}
}
