package usecase

import "oficina_diesel/internal/domain/entities"

// BudgetItemDraft is a raw budget line as submitted by the caller.
//
// ID is empty for brand-new items and carries the persisted identifier for
// items kept across edits. Quantity and UnitPrice arrive already coerced by
// the intake boundary (missing or non-numeric values become 0 there).
type BudgetItemDraft struct {
	ID          string
	Description string
	Quantity    float64
	UnitPrice   float64
}

// PriceBudgetItems prices a draft item list and totals the budget.
//
// Pure and deterministic: no side effects, same input always yields the same
// output, and the total does not depend on item order. Totals accumulate in
// full float64 precision; rounding to cents is a display concern.
func PriceBudgetItems(drafts []BudgetItemDraft) ([]entities.BudgetItem, float64) {
	items := make([]entities.BudgetItem, 0, len(drafts))
	total := 0.0
	for _, d := range drafts {
		item := entities.BudgetItem{
			ID:          d.ID,
			Description: d.Description,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			TotalPrice:  d.Quantity * d.UnitPrice,
		}
		total += item.TotalPrice
		items = append(items, item)
	}
	return items, total
}
