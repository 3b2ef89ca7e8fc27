package usecase

import (
	"context"
	"fmt"
	"log"

	"motolease/internal/domain/entities"
)

// reconcileRecurringCharge applies a recurring charge to a contract. The
// reference carries no installment id, so the engine selects the oldest
// payable installment by due date. With nothing left to pay, a fully-paid
// lease-to-own contract triggers the end-of-plan ownership transfer; anything
// else is recorded as an unapplied payment.
func (u *PaymentReconcileUseCase) reconcileRecurringCharge(ctx context.Context, contractID string, rec entities.PaymentRecord) error {
	installments, err := u.deps.Installments.ListByContractID(ctx, contractID)
	if err != nil {
		return fmt.Errorf("list installments contract_id=%s: %w", contractID, err)
	}

	if target, ok := oldestPayable(installments); ok {
		log.Printf("[reconcile][recurring] selected installment installment_id=%s number=%d contract_id=%s provider_payment_id=%s", target.ID, target.Number, contractID, rec.ProviderPaymentID)
		return u.settleInstallment(ctx, target, rec)
	}

	contract, err := u.deps.Contracts.GetByID(ctx, contractID)
	if err != nil {
		return fmt.Errorf("load contract id=%s: %w", contractID, err)
	}
	if contract.ID == "" {
		return fmt.Errorf("contract id=%s: %w", contractID, ErrContractNotFound)
	}

	if contract.IsLeaseToOwn && allPaid(installments) {
		log.Printf("[reconcile][recurring] plan complete; triggering end of plan contract_id=%s", contract.ID)
		if err := u.deps.EndOfPlan.ProcessEndOfPlan(ctx, contract.ID, ReconcilerActor); err != nil {
			return fmt.Errorf("process end of plan contract_id=%s: %w", contract.ID, err)
		}
		u.emit(ctx, "contract.plan_completed", "contract", contract.ID, map[string]interface{}{
			"provider_payment_id": rec.ProviderPaymentID,
		})
		return nil
	}

	// Payment received with nothing to apply it to. The ledger record plus
	// this event are the audit trail for out-of-band reconciliation.
	log.Printf("[reconcile][recurring] no payable installment contract_id=%s provider_payment_id=%s amount=%.2f", contractID, rec.ProviderPaymentID, rec.Amount)
	u.emit(ctx, "installment.unapplied", "contract", contractID, map[string]interface{}{
		"provider_payment_id": rec.ProviderPaymentID,
		"amount":              rec.Amount,
	})
	return nil
}

// oldestPayable returns the payable installment with the earliest due date.
// Due dates are unique per contract, so ties cannot occur.
func oldestPayable(installments []entities.Installment) (entities.Installment, bool) {
	var target entities.Installment
	found := false
	for _, inst := range installments {
		if !inst.Payable() {
			continue
		}
		if !found || inst.DueDate.Before(target.DueDate) {
			target = inst
			found = true
		}
	}
	return target, found
}

func allPaid(installments []entities.Installment) bool {
	if len(installments) == 0 {
		return false
	}
	for _, inst := range installments {
		if inst.Status != entities.InstallmentStatusPaid {
			return false
		}
	}
	return true
}
