package interfaces

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The payment-link flow reads orders and performs exactly one write: the
// conditional pending->paid flip when the gateway confirms a payment.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// MarkPaid flips payment_status pending->paid. Returns the zero Order
	// when the order is absent or not pending anymore (conditional no-op).
	MarkPaid(ctx context.Context, id string) (entities.Order, error)
}
