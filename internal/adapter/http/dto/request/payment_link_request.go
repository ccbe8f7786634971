package request

// PaymentLinkCreateRequest is the payload for the "create payment link"
// route. The order id is the only client input; everything else (amount,
// channels, redirect) is resolved server-side.

type PaymentLinkCreateRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// GatewayCallbackRequest is the confirmation payload posted by the gateway
// when a hosted link reaches a terminal state.

type GatewayCallbackRequest struct {
	PaymentLinkID string `json:"payment_link_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}
