package usecase

import "oficina_diesel/internal/domain/entities"

// DeriveStatus reclassifies a service order from its date and payment fields.
//
// First matching rule wins:
//  1. paid: payment date set and amount paid covers the budget
//  2. completed: completion date set
//  3. in_progress: service start date set
//  4. pending: otherwise
//
// The order's BudgetAmount must already hold the freshly computed budget.
// There is no transition history: every save is a full reclassification, so
// clearing a date moves the status backward.
func DeriveStatus(o entities.ServiceOrder) entities.ServiceStatus {
	switch {
	case o.PaymentDate != nil && o.AmountPaid >= o.BudgetAmount:
		return entities.StatusPaid
	case o.CompletionDate != nil:
		return entities.StatusCompleted
	case o.ServiceStartDate != nil:
		return entities.StatusInProgress
	default:
		return entities.StatusPending
	}
}
