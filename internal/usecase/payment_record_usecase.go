package usecase

import (
	"context"
	"errors"
	"strings"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase/interfaces"
)

var ErrPaymentRecordNotFound = errors.New("payment record not found")

// IPaymentRecordUseCase is the read side of the payment ledger, backing the
// operational lookup endpoint.

type IPaymentRecordUseCase interface {
	GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.PaymentRecord, error)
}

type PaymentRecordUseCase struct {
	records interfaces.IPaymentRecordRepository
}

var _ IPaymentRecordUseCase = (*PaymentRecordUseCase)(nil)

func NewPaymentRecordUseCase(records interfaces.IPaymentRecordRepository) *PaymentRecordUseCase {
	return &PaymentRecordUseCase{records: records}
}

func (u *PaymentRecordUseCase) GetByProviderPaymentID(ctx context.Context, providerPaymentID string) (entities.PaymentRecord, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.PaymentRecord{}, ErrInvalidProviderPaymentID
	}

	rec, err := u.records.GetByProviderPaymentID(ctx, providerPaymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if rec.ProviderPaymentID == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return rec, nil
}
