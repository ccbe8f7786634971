package interfaces

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
//
// CancelPendingByOrderID is the reconciliation half of the link flow: it
// moves every pending record for order+method to cancelled (zero, one or
// many rows) using a per-row conditional update, so a concurrent transition
// elsewhere makes the cancel a no-op instead of a blind overwrite.

type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error)
	GetByPaymentLinkID(ctx context.Context, paymentLinkID string) (entities.PaymentRecord, error)
	CancelPendingByOrderID(ctx context.Context, orderID, paymentMethod string) (int, error)
	// TransitionStatus moves a record from->to with a conditional write,
	// recording the gateway's status string. Returns the zero PaymentRecord
	// when the record is absent or no longer in the "from" status.
	TransitionStatus(ctx context.Context, id string, from, to entities.PaymentRecordStatus, gatewayStatus string) (entities.PaymentRecord, error)
}
