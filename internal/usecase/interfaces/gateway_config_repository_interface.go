package interfaces

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

// IGatewayConfigRepository resolves the active payment-gateway configuration.
//
// GetActive returns the zero GatewayConfig (Active=false) when no active
// configuration row exists. Credential validation is the caller's concern.

type IGatewayConfigRepository interface {
	GetActive(ctx context.Context) (entities.GatewayConfig, error)
}
