package usecase

import (
	"fmt"
	"strings"
)

// ValidationError reports a caller-supplied field that violates a constraint.
// Recoverable by the caller; Field names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func validateDraft(d ServiceOrderDraft) error {
	if strings.TrimSpace(d.CustomerName) == "" {
		return newValidationError("customerName", "must not be empty")
	}
	if strings.TrimSpace(d.CustomerPhone) == "" {
		return newValidationError("customerPhone", "must not be empty")
	}
	if strings.TrimSpace(d.ServiceDescription) == "" {
		return newValidationError("serviceDescription", "must not be empty")
	}
	if !d.ServiceType.Valid() {
		return newValidationError("serviceType", "must be conserto_bomba or restauracao_bico")
	}
	if d.CreationDate.IsZero() {
		return newValidationError("creationDate", "is required")
	}
	if d.AmountPaid < 0 {
		return newValidationError("amountPaid", "must not be negative")
	}
	for i, item := range d.BudgetItems {
		if strings.TrimSpace(item.Description) == "" {
			return newValidationError(fmt.Sprintf("budgetItems[%d].description", i), "must not be empty")
		}
		if item.Quantity < 0 {
			return newValidationError(fmt.Sprintf("budgetItems[%d].quantity", i), "must not be negative")
		}
		if item.UnitPrice < 0 {
			return newValidationError(fmt.Sprintf("budgetItems[%d].unitPrice", i), "must not be negative")
		}
	}
	return nil
}
