package interfaces

import (
	"context"

	"oficina_diesel/internal/domain/entities"
)

// IBudgetItemRepository abstracts DynamoDB persistence for BudgetItem.
//
// The reconciler must be able to:
//   - list the items currently persisted for a service order
//   - create items that are new in a submission
//   - update items carried over from a previous edit (stable ID)
//   - delete items omitted from a subsequent submission
//
// ListByServiceOrderID returns items in insertion order.

type IBudgetItemRepository interface {
	Create(ctx context.Context, item entities.BudgetItem) (entities.BudgetItem, error)
	Update(ctx context.Context, item entities.BudgetItem) (entities.BudgetItem, error)
	Delete(ctx context.Context, id string) error
	ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.BudgetItem, error)
}
