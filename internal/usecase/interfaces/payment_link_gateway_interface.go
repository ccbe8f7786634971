package interfaces

import (
	"context"
	"encoding/json"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

// PaymentLinkRequest is the provider-independent link request. Amounts are
// already in minor units; the gateway never performs currency arithmetic.

type PaymentLinkRequest struct {
	Currency     string
	AmountMinor  int64
	Description  string
	ReferenceID  string
	LinkSettings map[string]bool
	RedirectURL  string
}

// PaymentLink is the minted hosted-checkout link.
//
// Raw keeps the provider's full response body for audit; handlers never
// expose it to clients.

type PaymentLink struct {
	ID     string
	URL    string
	Status string
	Raw    json.RawMessage
}

// IPaymentLinkGateway abstracts the external payment-link provider.

type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, cfg entities.GatewayConfig, req PaymentLinkRequest) (PaymentLink, error)
}
