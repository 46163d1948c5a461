package request

import (
	"strconv"
	"strings"
	"time"

	"oficina_diesel/internal/domain/entities"
	"oficina_diesel/internal/usecase"
)

// FlexNumber tolerates the loosely-typed numerics that upstream forms send:
// plain numbers, string-encoded numbers, null. Missing or unparsable values
// coerce to 0 instead of failing the bind; rejecting bad values (e.g.
// negatives) is the validation step's job.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

type BudgetItemRequest struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Quantity    FlexNumber `json:"quantity"`
	UnitPrice   FlexNumber `json:"unitPrice"`
}

// ServiceOrderRequest is the order submission payload. Derived fields
// (id, status, budgetAmount, item totals) are ignored when sent; the engine
// always recomputes them.
type ServiceOrderRequest struct {
	CustomerName       string              `json:"customerName"`
	CustomerPhone      string              `json:"customerPhone"`
	CustomerAddress    string              `json:"customerAddress"`
	ServiceDescription string              `json:"serviceDescription"`
	ServiceType        string              `json:"serviceType"`
	AmountPaid         FlexNumber          `json:"amountPaid"`
	CreationDate       time.Time           `json:"creationDate"`
	ServiceStartDate   *time.Time          `json:"serviceStartDate"`
	CompletionDate     *time.Time          `json:"completionDate"`
	PaymentDate        *time.Time          `json:"paymentDate"`
	BudgetItems        []BudgetItemRequest `json:"budgetItems"`
}

func (r ServiceOrderRequest) ToDraft() usecase.ServiceOrderDraft {
	items := make([]usecase.BudgetItemDraft, 0, len(r.BudgetItems))
	for _, it := range r.BudgetItems {
		items = append(items, usecase.BudgetItemDraft{
			ID:          strings.TrimSpace(it.ID),
			Description: it.Description,
			Quantity:    float64(it.Quantity),
			UnitPrice:   float64(it.UnitPrice),
		})
	}
	return usecase.ServiceOrderDraft{
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerAddress:    r.CustomerAddress,
		ServiceDescription: r.ServiceDescription,
		ServiceType:        entities.ServiceType(strings.TrimSpace(r.ServiceType)),
		AmountPaid:         float64(r.AmountPaid),
		CreationDate:       r.CreationDate,
		ServiceStartDate:   r.ServiceStartDate,
		CompletionDate:     r.CompletionDate,
		PaymentDate:        r.PaymentDate,
		BudgetItems:        items,
	}
}
