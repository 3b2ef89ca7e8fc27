package handlers

import (
	"errors"
	"log"
	"net/http"

	response "motolease/internal/adapter/http/dto/response"
	"motolease/internal/usecase"
	"motolease/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentRecordHandler exposes the read side of the payment ledger for
// operational lookups.

type PaymentRecordHandler struct {
	usecase usecase.IPaymentRecordUseCase
}

func NewPaymentRecordHandler(uc usecase.IPaymentRecordUseCase) *PaymentRecordHandler {
	return &PaymentRecordHandler{usecase: uc}
}

// GetByProviderPaymentID returns the local mirror of one provider payment.
func (h *PaymentRecordHandler) GetByProviderPaymentID(c *gin.Context) {
	providerPaymentID := c.Param("provider_payment_id")

	rec, err := h.usecase.GetByProviderPaymentID(c.Request.Context(), providerPaymentID)
	if err != nil {
		log.Printf("[ledger][handler] get failed provider_payment_id=%s err=%v", providerPaymentID, err)
		appErr := mapPaymentRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

func mapPaymentRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_RECORD_NOT_FOUND", "Payment record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
