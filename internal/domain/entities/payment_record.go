package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// PaymentMethodGateway tags records created by the hosted payment-link flow.
const PaymentMethodGateway = "payment_gateway"

// PaymentRecordStatus is the closed lifecycle of a payment attempt.
//
// A record is created pending when a link is minted. It leaves pending in
// exactly one of three ways: cancelled by a newer link request, or paid /
// failed by the gateway confirmation callback. Terminal states never move.

type PaymentRecordStatus string

const (
	PaymentRecordPending   PaymentRecordStatus = "pending"
	PaymentRecordCancelled PaymentRecordStatus = "cancelled"
	PaymentRecordPaid      PaymentRecordStatus = "paid"
	PaymentRecordFailed    PaymentRecordStatus = "failed"
)

// CanTransitionTo reports whether the status machine allows moving to next.
func (s PaymentRecordStatus) CanTransitionTo(next PaymentRecordStatus) bool {
	if s != PaymentRecordPending {
		return false
	}
	switch next {
	case PaymentRecordCancelled, PaymentRecordPaid, PaymentRecordFailed:
		return true
	}
	return false
}

// PaymentRecord is one attempt to pay an order through the gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (payment_link_id-index): payment_link_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the original response body (JSON) for audit.
//   - GatewayPayload is an optional parsed representation, useful for
//     querying/debugging. (Both are persisted; gateway schemas vary.)

type PaymentRecord struct {
	ID            string              `json:"id"`
	OrderID       string              `json:"order_id"`
	PaymentMethod string              `json:"payment_method"`
	Amount        float64             `json:"amount"`
	Status        PaymentRecordStatus `json:"status"`

	PaymentLinkID  string `json:"payment_link_id,omitempty"`
	PaymentLinkURL string `json:"payment_link_url,omitempty"`
	GatewayStatus  string `json:"gateway_status,omitempty"`

	GatewayPayloadRaw json.RawMessage        `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    map[string]interface{} `json:"gateway_payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transition moves the record to next, rejecting any move the status
// machine does not allow.
func (p *PaymentRecord) Transition(next PaymentRecordStatus) error {
	if !p.Status.CanTransitionTo(next) {
		return fmt.Errorf("payment record %s: invalid transition %s -> %s", p.ID, p.Status, next)
	}
	p.Status = next
	return nil
}
