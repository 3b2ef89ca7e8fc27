package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// reconcileInstallment settles one directly-referenced installment.
func (u *PaymentReconcileUseCase) reconcileInstallment(ctx context.Context, installmentID, contractID string, rec entities.PaymentRecord) error {
	inst, err := u.deps.Installments.GetByID(ctx, installmentID)
	if err != nil {
		return fmt.Errorf("load installment id=%s: %w", installmentID, err)
	}
	if inst.ID == "" {
		return fmt.Errorf("installment id=%s: %w", installmentID, ErrInstallmentNotFound)
	}
	if inst.ContractID != contractID {
		// The installment's own contract id wins; the reference is advisory.
		log.Printf("[reconcile][installment] contract mismatch installment_id=%s reference_contract_id=%s actual_contract_id=%s", inst.ID, contractID, inst.ContractID)
	}
	return u.settleInstallment(ctx, inst, rec)
}

// settleInstallment marks an installment paid and runs the shared side
// effects. Installment #1 additionally hands the vehicle over and delivers
// the loan application; each sub-step re-checks current state so a duplicate
// delivery after a partial prior failure converges without double-applying.
func (u *PaymentReconcileUseCase) settleInstallment(ctx context.Context, inst entities.Installment, rec entities.PaymentRecord) error {
	if !inst.Payable() {
		log.Printf("[reconcile][installment] already settled installment_id=%s status=%s provider_payment_id=%s", inst.ID, inst.Status, rec.ProviderPaymentID)
		return u.convergeDelivery(ctx, inst)
	}

	applied, err := u.deps.Installments.MarkPaid(ctx, inst.ID, rec.Amount, time.Now().UTC(), rec.ProviderPaymentID)
	if err != nil {
		return fmt.Errorf("mark installment paid id=%s: %w", inst.ID, err)
	}
	if !applied {
		log.Printf("[reconcile][installment] transition not applied installment_id=%s provider_payment_id=%s", inst.ID, rec.ProviderPaymentID)
		return u.convergeDelivery(ctx, inst)
	}
	log.Printf("[reconcile][installment] marked paid installment_id=%s number=%d contract_id=%s provider_payment_id=%s", inst.ID, inst.Number, inst.ContractID, rec.ProviderPaymentID)

	contract, err := u.deps.Contracts.GetByID(ctx, inst.ContractID)
	if err != nil {
		return fmt.Errorf("load contract id=%s: %w", inst.ContractID, err)
	}
	if contract.ID == "" {
		return fmt.Errorf("contract id=%s: %w", inst.ContractID, ErrContractNotFound)
	}

	u.issueInvoice(ctx, interfaces.InvoiceRequest{
		PaymentID:   rec.ProviderPaymentID,
		SubjectID:   inst.ID,
		SubjectType: "installment",
		CustomerID:  contract.CustomerID,
		Amount:      rec.Amount,
	})

	u.emit(ctx, "installment.paid", "installment", inst.ID, map[string]interface{}{
		"contract_id":         contract.ID,
		"number":              inst.Number,
		"provider_payment_id": rec.ProviderPaymentID,
		"amount":              rec.Amount,
	})

	if inst.Number == 1 {
		return u.handleFirstInstallment(ctx, contract)
	}
	return nil
}

// convergeDelivery re-runs the installment-#1 delivery side effects for a
// duplicate of an already-settled installment. A prior attempt can have
// failed between marking paid and handing over the vehicle; the sub-steps are
// each gated on current state, so once everything converged this issues reads
// only.
func (u *PaymentReconcileUseCase) convergeDelivery(ctx context.Context, inst entities.Installment) error {
	if inst.Number != 1 {
		return nil
	}
	contract, err := u.deps.Contracts.GetByID(ctx, inst.ContractID)
	if err != nil {
		return fmt.Errorf("load contract id=%s: %w", inst.ContractID, err)
	}
	if contract.ID == "" {
		return fmt.Errorf("contract id=%s: %w", inst.ContractID, ErrContractNotFound)
	}
	return u.handleFirstInstallment(ctx, contract)
}

// handleFirstInstallment runs the delivery side effects of installment #1:
// vehicle RESERVED -> RENTED with a history entry, then the loan application
// APPROVED -> DELIVERED. Both are gated on current state.
func (u *PaymentReconcileUseCase) handleFirstInstallment(ctx context.Context, contract entities.Contract) error {
	vehicle, err := u.deps.Vehicles.GetByID(ctx, contract.VehicleID)
	if err != nil {
		return fmt.Errorf("load vehicle id=%s: %w", contract.VehicleID, err)
	}
	if vehicle.ID != "" && vehicle.Status == entities.VehicleStatusReserved {
		applied, err := u.deps.Vehicles.TransitionStatus(ctx, vehicle.ID, entities.VehicleStatusReserved, entities.VehicleStatusRented)
		if err != nil {
			return fmt.Errorf("transition vehicle id=%s: %w", vehicle.ID, err)
		}
		if applied {
			change := entities.VehicleStatusChange{
				ID:         uuid.NewString(),
				VehicleID:  vehicle.ID,
				FromStatus: entities.VehicleStatusReserved,
				ToStatus:   entities.VehicleStatusRented,
				Actor:      ReconcilerActor,
				ChangedAt:  time.Now().UTC(),
			}
			if err := u.deps.Vehicles.AppendStatusHistory(ctx, change); err != nil {
				log.Printf("[reconcile][installment] status history append failed vehicle_id=%s err=%v", vehicle.ID, err)
			}
			log.Printf("[reconcile][installment] vehicle rented vehicle_id=%s contract_id=%s", vehicle.ID, contract.ID)
			u.emit(ctx, "vehicle.rented", "vehicle", vehicle.ID, map[string]interface{}{
				"contract_id": contract.ID,
				"from_status": string(entities.VehicleStatusReserved),
				"to_status":   string(entities.VehicleStatusRented),
			})
		}
	}

	if contract.LoanApplicationID == "" {
		return nil
	}
	app, err := u.deps.LoanApplications.GetByID(ctx, contract.LoanApplicationID)
	if err != nil {
		return fmt.Errorf("load loan application id=%s: %w", contract.LoanApplicationID, err)
	}
	if app.ID == "" || app.Status != entities.LoanApplicationStatusApproved {
		return nil
	}
	applied, err := u.deps.LoanApplications.MarkDelivered(ctx, app.ID)
	if err != nil {
		return fmt.Errorf("mark loan application delivered id=%s: %w", app.ID, err)
	}
	if applied {
		log.Printf("[reconcile][installment] loan application delivered loan_application_id=%s contract_id=%s", app.ID, contract.ID)
		u.emit(ctx, "loan_application.delivered", "loan_application", app.ID, map[string]interface{}{
			"contract_id": contract.ID,
		})
	}
	return nil
}
