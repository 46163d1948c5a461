package response

import (
	"math"
	"time"

	"oficina_diesel/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

type ServiceOrderResponse struct {
	ID                 string               `json:"id"`
	CustomerName       string               `json:"customerName"`
	CustomerPhone      string               `json:"customerPhone"`
	CustomerAddress    string               `json:"customerAddress,omitempty"`
	ServiceDescription string               `json:"serviceDescription"`
	ServiceType        string               `json:"serviceType"`
	BudgetAmount       float64              `json:"budgetAmount"`
	BudgetItems        []BudgetItemResponse `json:"budgetItems"`
	AmountPaid         float64              `json:"amountPaid"`
	CreationDate       time.Time            `json:"creationDate"`
	ServiceStartDate   *time.Time           `json:"serviceStartDate,omitempty"`
	CompletionDate     *time.Time           `json:"completionDate,omitempty"`
	PaymentDate        *time.Time           `json:"paymentDate,omitempty"`
	Status             string               `json:"status"`
}

// FromServiceOrder maps an order to the wire shape. Monetary values are
// rounded to cents here, at the display boundary; the engine accumulates at
// full precision.
func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]BudgetItemResponse, 0, len(o.BudgetItems))
	for _, it := range o.BudgetItems {
		items = append(items, BudgetItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   roundCents(it.UnitPrice),
			TotalPrice:  roundCents(it.TotalPrice),
		})
	}
	return ServiceOrderResponse{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		CustomerAddress:    o.CustomerAddress,
		ServiceDescription: o.ServiceDescription,
		ServiceType:        string(o.ServiceType),
		BudgetAmount:       roundCents(o.BudgetAmount),
		BudgetItems:        items,
		AmountPaid:         roundCents(o.AmountPaid),
		CreationDate:       o.CreationDate,
		ServiceStartDate:   o.ServiceStartDate,
		CompletionDate:     o.CompletionDate,
		PaymentDate:        o.PaymentDate,
		Status:             string(o.Status),
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
