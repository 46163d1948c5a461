package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"oficina_diesel/internal/domain/entities"
	"oficina_diesel/internal/usecase/interfaces"
)

var (
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrNothingToCharge             = errors.New("service order has no budget to charge")
	ErrAlreadyPaid                 = errors.New("service order is already paid")
)

// IPaymentUseCase charges a service order's outstanding budget through the
// payment gateway and stamps the order as paid.
//
// Requested behavior:
//   - Charge budget - amountPaid through the provider.
//   - On approval, set amountPaid to the budget, stamp paymentDate and
//     re-derive the status (which lands on paid).

type IPaymentUseCase interface {
	PayOrder(ctx context.Context, serviceOrderID string, payload json.RawMessage) (entities.ServiceOrder, error)
}

type PaymentUseCase struct {
	orders  interfaces.IServiceOrderRepository
	items   interfaces.IBudgetItemRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IServiceOrderRepository, items interfaces.IBudgetItemRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, items: items, gateway: gateway}
}

func (u *PaymentUseCase) PayOrder(ctx context.Context, serviceOrderID string, payload json.RawMessage) (entities.ServiceOrder, error) {
	serviceOrderID = strings.TrimSpace(serviceOrderID)
	if serviceOrderID == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	mockMode := isPaymentGatewayMockEnabled()
	if u.gateway == nil && !mockMode {
		return entities.ServiceOrder{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orders.GetByID(ctx, serviceOrderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}

	items, err := u.items.ListByServiceOrderID(ctx, serviceOrderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	budget := 0.0
	for _, it := range items {
		budget += it.TotalPrice
	}
	if budget <= 0 {
		return entities.ServiceOrder{}, ErrNothingToCharge
	}
	outstanding := budget - order.AmountPaid
	if outstanding <= 0 && order.PaymentDate != nil {
		return entities.ServiceOrder{}, ErrAlreadyPaid
	}
	log.Printf("[payment][usecase] charge start service_order_id=%s budget=%.2f outstanding=%.2f", serviceOrderID, budget, outstanding)

	enriched, err := enrichPaymentPayload(payload, order, outstanding)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway service_order_id=%s", serviceOrderID)
	} else {
		providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed service_order_id=%s err=%v", serviceOrderID, err)
			return entities.ServiceOrder{}, err
		}
		log.Printf("[payment][usecase] payment gateway success service_order_id=%s provider_payment_id=%s provider_status=%s", serviceOrderID, providerPaymentID, providerStatus)
	}

	now := time.Now().UTC()
	order.BudgetAmount = budget
	order.AmountPaid = budget
	order.PaymentDate = &now
	order.Status = DeriveStatus(order)

	updated, err := u.orders.Update(ctx, order)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	updated.BudgetItems = items
	log.Printf("[payment][usecase] charge success service_order_id=%s status=%s amount_paid=%.2f", serviceOrderID, updated.Status, updated.AmountPaid)
	return updated, nil
}

// enrichPaymentPayload links the provider request to the order. The amount
// charged always comes from the persisted budget, never from the caller.
func enrichPaymentPayload(payload json.RawMessage, order entities.ServiceOrder, amount float64) (json.RawMessage, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return nil, ErrInvalidPaymentPayload
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Ordem de serviço %s", order.ID)
	}
	reqMap["transaction_amount"] = round2(amount)

	return json.Marshal(reqMap)
}

// round2 rounds to the currency's minor unit for the provider request only;
// internal accumulation stays at full precision.
func round2(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	r, _ := strconv.ParseFloat(s, 64)
	return r
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
