package interfaces

import (
	"context"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
