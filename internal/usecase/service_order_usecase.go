package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_diesel/internal/domain/entities"
	"oficina_diesel/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrServiceOrderNotFound  = errors.New("service order not found")
	ErrInvalidServiceOrderID = errors.New("invalid service order id")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
)

// ServiceOrderDraft is a fully-typed order submission, before the engine
// assigns ID, status and budget totals. Optional dates are nil when absent.
type ServiceOrderDraft struct {
	CustomerName       string
	CustomerPhone      string
	CustomerAddress    string
	ServiceDescription string
	ServiceType        entities.ServiceType
	AmountPaid         float64
	CreationDate       time.Time
	ServiceStartDate   *time.Time
	CompletionDate     *time.Time
	PaymentDate        *time.Time
	BudgetItems        []BudgetItemDraft
}

// IServiceOrderUseCase exposes the order lifecycle operations.
//
//   - Save prices the budget, derives the status and persists the order plus
//     its reconciled budget item set in one pass.
//   - GetByID / List return orders enriched with their persisted items.

type IServiceOrderUseCase interface {
	Save(ctx context.Context, draft ServiceOrderDraft, existingID string) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.StatusFilter) ([]entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orders interfaces.IServiceOrderRepository
	items  interfaces.IBudgetItemRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(orders interfaces.IServiceOrderRepository, items interfaces.IBudgetItemRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{orders: orders, items: items}
}

// Save validates the draft, prices its budget items, derives the status and
// persists everything. With an existingID it updates that order and
// reconciles the item set by diff; otherwise it creates a new order.
//
// No rollback: if a store call fails partway the error is surfaced and the
// caller must re-fetch to assess what was actually written.
func (u *ServiceOrderUseCase) Save(ctx context.Context, draft ServiceOrderDraft, existingID string) (entities.ServiceOrder, error) {
	existingID = strings.TrimSpace(existingID)
	if err := validateDraft(draft); err != nil {
		return entities.ServiceOrder{}, err
	}

	priced, total := PriceBudgetItems(draft.BudgetItems)

	order := entities.ServiceOrder{
		CustomerName:       strings.TrimSpace(draft.CustomerName),
		CustomerPhone:      strings.TrimSpace(draft.CustomerPhone),
		CustomerAddress:    strings.TrimSpace(draft.CustomerAddress),
		ServiceDescription: strings.TrimSpace(draft.ServiceDescription),
		ServiceType:        draft.ServiceType,
		BudgetAmount:       total,
		AmountPaid:         draft.AmountPaid,
		CreationDate:       draft.CreationDate,
		ServiceStartDate:   draft.ServiceStartDate,
		CompletionDate:     draft.CompletionDate,
		PaymentDate:        draft.PaymentDate,
	}
	order.Status = DeriveStatus(order)

	if existingID == "" {
		order.ID = uuid.NewString()
		if _, err := u.orders.Create(ctx, order); err != nil {
			return entities.ServiceOrder{}, err
		}
	} else {
		existing, err := u.orders.GetByID(ctx, existingID)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if existing.ID == "" {
			return entities.ServiceOrder{}, ErrServiceOrderNotFound
		}
		order.ID = existingID
		if _, err := u.orders.Update(ctx, order); err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	if err := u.reconcileBudgetItems(ctx, order.ID, priced); err != nil {
		return entities.ServiceOrder{}, err
	}

	return u.materialize(ctx, order.ID)
}

// reconcileBudgetItems makes the persisted item set for the order equal the
// submitted set: items carried over by ID are updated in place, items with no
// recognized ID are created (generating an ID when the caller sent none), and
// previously persisted items absent from the submission are deleted.
// Re-creating everything on each edit would duplicate budget contributions.
func (u *ServiceOrderUseCase) reconcileBudgetItems(ctx context.Context, serviceOrderID string, submitted []entities.BudgetItem) error {
	existing, err := u.items.ListByServiceOrderID(ctx, serviceOrderID)
	if err != nil {
		return err
	}

	existingByID := make(map[string]struct{}, len(existing))
	for _, it := range existing {
		existingByID[it.ID] = struct{}{}
	}

	kept := make(map[string]struct{}, len(submitted))
	for _, item := range submitted {
		item.ServiceOrderID = serviceOrderID
		if item.ID != "" {
			if _, ok := existingByID[item.ID]; ok {
				if _, err := u.items.Update(ctx, item); err != nil {
					return err
				}
				kept[item.ID] = struct{}{}
				continue
			}
		} else {
			item.ID = uuid.NewString()
		}
		if _, err := u.items.Create(ctx, item); err != nil {
			return err
		}
		kept[item.ID] = struct{}{}
	}

	for _, it := range existing {
		if _, ok := kept[it.ID]; ok {
			continue
		}
		if err := u.items.Delete(ctx, it.ID); err != nil {
			return err
		}
	}
	return nil
}

// materialize re-reads the order and its items so the returned budget amount
// reflects what was actually persisted, not what was computed in memory.
func (u *ServiceOrderUseCase) materialize(ctx context.Context, id string) (entities.ServiceOrder, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}

	items, err := u.items.ListByServiceOrderID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	total := 0.0
	for _, it := range items {
		total += it.TotalPrice
	}
	order.BudgetItems = items
	order.BudgetAmount = total
	return order, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	return u.materialize(ctx, id)
}

// List returns orders matching the status filter, each enriched with its
// budget items. Orders are independent, so items are fetched concurrently;
// the listing as a whole is not atomic against in-flight writes.
func (u *ServiceOrderUseCase) List(ctx context.Context, filter entities.StatusFilter) ([]entities.ServiceOrder, error) {
	if !filter.Valid() {
		return nil, ErrInvalidStatusFilter
	}

	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if filter.Matches(o.Status) {
			filtered = append(filtered, o)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range filtered {
		g.Go(func() error {
			items, err := u.items.ListByServiceOrderID(gctx, filtered[i].ID)
			if err != nil {
				return err
			}
			total := 0.0
			for _, it := range items {
				total += it.TotalPrice
			}
			filtered[i].BudgetItems = items
			filtered[i].BudgetAmount = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return filtered, nil
}
