package interfaces

import (
	"context"

	"oficina_diesel/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Conventions:
//   - Lookups return a zero-value entity (empty ID) when nothing matches;
//     the use case layer translates that into a not-found error.
//   - Update must only write the fields that are semantically present on the
//     entity; absent optional dates are left untouched in storage, never
//     overwritten with an empty marker.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
}
