package entities

import "errors"

var (
	ErrMissingMerchantID = errors.New("gateway config missing merchant id")
	ErrMissingAPIKey     = errors.New("gateway config missing api key")
)

// GatewayEnvironment selects the gateway host the service talks to.

type GatewayEnvironment string

const (
	GatewayEnvSandbox    GatewayEnvironment = "sandbox"
	GatewayEnvProduction GatewayEnvironment = "production"
)

// ChannelRule is the per-channel-code configuration.
//
// A channel is exposed to an order only when Enabled, the order total is at
// least MinAmount and, if CustomerTypes is non-empty, the order's customer
// type is listed.

type ChannelRule struct {
	Enabled       bool     `json:"enabled"`
	MinAmount     float64  `json:"min_amount"`
	CustomerTypes []string `json:"customer_types,omitempty"`
}

// GatewayConfig is the active payment-gateway configuration.
//
// Storage model (DynamoDB):
//   - settings table, fixed item id "bill_online/payment_gateway"
//
// The config is decoded into this struct once at the repository boundary and
// validated eagerly; the rest of the flow never touches raw settings blobs.
// Read-only to the payment-link flow.

type GatewayConfig struct {
	Active      bool                   `json:"active"`
	MerchantID  string                 `json:"merchant_id"`
	APIKey      string                 `json:"api_key"`
	Environment GatewayEnvironment     `json:"environment"`
	Channels    map[string]ChannelRule `json:"channels"`
}

// Validate checks the credentials needed to call the gateway.
func (c GatewayConfig) Validate() error {
	if c.MerchantID == "" {
		return ErrMissingMerchantID
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
