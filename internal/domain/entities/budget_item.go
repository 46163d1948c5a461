package entities

// BudgetItem is a single priced line of a service order's budget.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (service_order_id-index): service_order_id
//
// TotalPrice is derived (quantity * unit price) and recomputed on every
// write; a caller-supplied total is never trusted.

type BudgetItem struct {
	ID             string  `json:"id"`
	ServiceOrderID string  `json:"serviceOrderId"`
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	TotalPrice     float64 `json:"totalPrice"`
}
