package response

import (
	"time"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

// PaymentRecordResponse echoes a payment record to clients. The top-level
// payment_url / payment_link_id pair is what the storefront consumes after
// creating a link; the rest is for the operations dashboard.
//
// The raw gateway payload is intentionally absent: provider internals stay
// server-side.

type PaymentRecordResponse struct {
	PaymentURL    string `json:"payment_url,omitempty"`
	PaymentLinkID string `json:"payment_link_id,omitempty"`

	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	PaymentMethod string    `json:"payment_method"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	GatewayStatus string    `json:"gateway_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentURL:    p.PaymentLinkURL,
		PaymentLinkID: p.PaymentLinkID,
		ID:            p.ID,
		OrderID:       p.OrderID,
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
		Status:        string(p.Status),
		GatewayStatus: p.GatewayStatus,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
