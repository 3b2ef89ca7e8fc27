package usecase

import (
	"context"
	"fmt"
	"log"

	"motolease/internal/domain/entities"
	"motolease/internal/usecase/interfaces"
)

// reconcilePartsOrder confirms a spare-parts sale: PAYMENT_PENDING -> PAID,
// one stock decrement per line item, one sale-confirmed event. A decrement
// failure does not abort the remaining lines; each movement is individually
// retriable out of band.
func (u *PaymentReconcileUseCase) reconcilePartsOrder(ctx context.Context, partsOrderID string, rec entities.PaymentRecord) error {
	order, err := u.deps.PartsOrders.GetByID(ctx, partsOrderID)
	if err != nil {
		return fmt.Errorf("load parts order id=%s: %w", partsOrderID, err)
	}
	if order.ID == "" {
		return fmt.Errorf("parts order id=%s: %w", partsOrderID, ErrPartsOrderNotFound)
	}
	if order.Status != entities.PartsOrderStatusPaymentPending {
		log.Printf("[reconcile][partsorder] already processed parts_order_id=%s status=%s provider_payment_id=%s", order.ID, order.Status, rec.ProviderPaymentID)
		return nil
	}

	applied, err := u.deps.PartsOrders.MarkPaid(ctx, order.ID, rec.ProviderPaymentID)
	if err != nil {
		return fmt.Errorf("mark parts order paid id=%s: %w", order.ID, err)
	}
	if !applied {
		log.Printf("[reconcile][partsorder] transition not applied parts_order_id=%s provider_payment_id=%s", order.ID, rec.ProviderPaymentID)
		return nil
	}
	log.Printf("[reconcile][partsorder] marked paid parts_order_id=%s items=%d provider_payment_id=%s", order.ID, len(order.Items), rec.ProviderPaymentID)

	for _, item := range order.Items {
		movement := interfaces.StockMovement{
			PartID:     item.PartID,
			Direction:  interfaces.StockDirectionOut,
			Quantity:   item.Quantity,
			OriginType: "parts_order",
			OriginID:   order.ID,
		}
		if err := u.deps.Stock.RecordStockMovement(ctx, movement); err != nil {
			log.Printf("[reconcile][partsorder] stock movement failed parts_order_id=%s part_id=%s quantity=%d err=%v", order.ID, item.PartID, item.Quantity, err)
		}
	}

	u.emit(ctx, "parts_order.sale_confirmed", "parts_order", order.ID, map[string]interface{}{
		"provider_payment_id": rec.ProviderPaymentID,
		"amount":              order.TotalAmount,
		"line_count":          len(order.Items),
	})
	return nil
}
