//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_test
package completion

import (
	"context"

	"driversync/internal/entities"
)

type Deliveries interface {
	CompleteDelivery(ctx context.Context, completed bool, notes string, proofImage []byte) (*entities.Delivery, error)
}
