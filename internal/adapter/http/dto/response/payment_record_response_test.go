package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	p := entities.PaymentRecord{
		ID:                "rec-1",
		OrderID:           "ord-1",
		PaymentMethod:     entities.PaymentMethodGateway,
		Amount:            500,
		Status:            entities.PaymentRecordPending,
		PaymentLinkID:     "pl_1",
		PaymentLinkURL:    "https://pay/x",
		GatewayStatus:     "active",
		GatewayPayloadRaw: json.RawMessage(`{"secret":"internal"}`),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromPaymentRecord(p)
	if res.PaymentURL != "https://pay/x" || res.PaymentLinkID != "pl_1" {
		t.Fatalf("unexpected link fields: %+v", res)
	}
	if res.ID != "rec-1" || res.OrderID != "ord-1" || res.Status != "pending" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != 500 || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected amount/date: %+v", res)
	}
}

func TestPaymentRecordResponse_OmitsGatewayPayload(t *testing.T) {
	p := entities.PaymentRecord{
		ID:                "rec-1",
		GatewayPayloadRaw: json.RawMessage(`{"secret":"internal"}`),
		GatewayPayload:    map[string]interface{}{"secret": "internal"},
	}

	b, err := json.Marshal(FromPaymentRecord(p))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(b), "internal") {
		t.Fatalf("gateway payload must not leak to clients: %s", b)
	}
}
