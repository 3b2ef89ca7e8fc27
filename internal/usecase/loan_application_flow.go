package usecase

import (
	"context"
	"fmt"
	"log"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase/interfaces"
)

// reconcileLoanApplication settles the up-front payment of a lease
// application: PAYMENT_PENDING -> PAID, invoice for the first month, one
// business event. Already-paid applications are a silent no-op.
func (u *PaymentReconcileUseCase) reconcileLoanApplication(ctx context.Context, loanApplicationID string, rec entities.PaymentRecord) error {
	app, err := u.deps.LoanApplications.GetByID(ctx, loanApplicationID)
	if err != nil {
		return fmt.Errorf("load loan application id=%s: %w", loanApplicationID, err)
	}
	if app.ID == "" {
		return fmt.Errorf("loan application id=%s: %w", loanApplicationID, ErrLoanApplicationNotFound)
	}
	if app.Status != entities.LoanApplicationStatusPaymentPending {
		log.Printf("[reconcile][loanapp] already processed loan_application_id=%s status=%s provider_payment_id=%s", app.ID, app.Status, rec.ProviderPaymentID)
		return nil
	}

	applied, err := u.deps.LoanApplications.MarkPaid(ctx, app.ID, rec.ProviderPaymentID)
	if err != nil {
		return fmt.Errorf("mark loan application paid id=%s: %w", app.ID, err)
	}
	if !applied {
		// A concurrent delivery won the transition; nothing left to do.
		log.Printf("[reconcile][loanapp] transition not applied loan_application_id=%s provider_payment_id=%s", app.ID, rec.ProviderPaymentID)
		return nil
	}
	log.Printf("[reconcile][loanapp] marked paid loan_application_id=%s provider_payment_id=%s", app.ID, rec.ProviderPaymentID)

	u.issueInvoice(ctx, interfaces.InvoiceRequest{
		PaymentID:   rec.ProviderPaymentID,
		SubjectID:   app.ID,
		SubjectType: "loan_application",
		CustomerID:  app.CustomerID,
		Amount:      app.FirstMonthAmount,
	})

	u.emit(ctx, "loan_application.paid", "loan_application", app.ID, map[string]interface{}{
		"provider_payment_id": rec.ProviderPaymentID,
		"amount":              rec.Amount,
	})
	return nil
}
