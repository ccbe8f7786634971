package entities

import "time"

// OrderPaymentStatus tracks whether an order has been paid.
//
// The payment-link flow never writes this field; the transition to "paid"
// is driven by the gateway confirmation callback only. This lets a customer
// abandon a link and retry without the order being marked failed.

type OrderPaymentStatus string

const (
	OrderPaymentPending OrderPaymentStatus = "pending"
	OrderPaymentPaid    OrderPaymentStatus = "paid"
)

// OrderStatus is the fulfilment state of a sales order.

type OrderStatus string

const (
	OrderStatusDraft        OrderStatus = "draft"
	OrderStatusConfirmed    OrderStatus = "confirmed"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusCancelled    OrderStatus = "cancelled"
)

// Order is the sales order a payment link is minted for.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The order store owns this entity; the payment-link flow reads it and only
// ever flips PaymentStatus pending->paid from the confirmation callback.
//
// Monetary representation:
//   - TotalAmount is in major currency units (baht). Conversion to minor
//     units (satang) happens once, at the gateway boundary.

type Order struct {
	ID            string             `json:"id"`
	OrderNumber   string             `json:"order_number"`
	TotalAmount   float64            `json:"total_amount"`
	PaymentStatus OrderPaymentStatus `json:"payment_status"`
	OrderStatus   OrderStatus        `json:"order_status"`
	CustomerID    string             `json:"customer_id"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// CanRequestPaymentLink reports whether a payment link may be created for
// this order: payment still pending and the order not cancelled.
func (o Order) CanRequestPaymentLink() bool {
	return o.PaymentStatus == OrderPaymentPending && o.OrderStatus != OrderStatusCancelled
}
