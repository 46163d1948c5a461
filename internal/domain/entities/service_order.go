package entities

import "time"

// ServiceType enumerates the shop's main service lines.
//
// Domain notes:
//   - The oficina only services diesel injection parts: pump repair
//     (conserto de bomba) and injector nozzle restoration (restauração de bico).

type ServiceType string

const (
	ServiceTypeConsertoBomba   ServiceType = "conserto_bomba"
	ServiceTypeRestauracaoBico ServiceType = "restauracao_bico"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeConsertoBomba, ServiceTypeRestauracaoBico:
		return true
	}
	return false
}

// ServiceStatus is the lifecycle state of a service order.
//
// Status is never set directly: it is re-derived from the order's
// dates and payment fields on every save. Editing a date out moves
// the status backward.

type ServiceStatus string

const (
	StatusPending    ServiceStatus = "pending"
	StatusInProgress ServiceStatus = "in_progress"
	StatusCompleted  ServiceStatus = "completed"
	StatusPaid       ServiceStatus = "paid"
)

// StatusFilter is a list-screen filter over ServiceStatus. Besides the four
// concrete statuses it accepts "all" and "uncompleted" (pending + in_progress).
type StatusFilter string

const (
	FilterAll         StatusFilter = "all"
	FilterUncompleted StatusFilter = "uncompleted"
)

func (f StatusFilter) Matches(s ServiceStatus) bool {
	switch f {
	case "", FilterAll:
		return true
	case FilterUncompleted:
		return s == StatusPending || s == StatusInProgress
	}
	return s == ServiceStatus(f)
}

func (f StatusFilter) Valid() bool {
	switch f {
	case "", FilterAll, FilterUncompleted:
		return true
	}
	return ServiceStatus(f) == StatusPending || ServiceStatus(f) == StatusInProgress ||
		ServiceStatus(f) == StatusCompleted || ServiceStatus(f) == StatusPaid
}

// ServiceOrder is a repair-shop work order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Budget items live in their own table keyed by service_order_id.
//
// Monetary representation:
//   - BudgetAmount is always the sum of the persisted budget item totals.
//   - AmountPaid is caller supplied and must be non-negative.
//
// Optional dates are pointers; nil means the milestone has not happened.

type ServiceOrder struct {
	ID                 string        `json:"id"`
	CustomerName       string        `json:"customerName"`
	CustomerPhone      string        `json:"customerPhone"`
	CustomerAddress    string        `json:"customerAddress,omitempty"`
	ServiceDescription string        `json:"serviceDescription"`
	ServiceType        ServiceType   `json:"serviceType"`
	BudgetAmount       float64       `json:"budgetAmount"`
	BudgetItems        []BudgetItem  `json:"budgetItems"`
	AmountPaid         float64       `json:"amountPaid"`
	CreationDate       time.Time     `json:"creationDate"`
	ServiceStartDate   *time.Time    `json:"serviceStartDate,omitempty"`
	CompletionDate     *time.Time    `json:"completionDate,omitempty"`
	PaymentDate        *time.Time    `json:"paymentDate,omitempty"`
	Status             ServiceStatus `json:"status"`
}
