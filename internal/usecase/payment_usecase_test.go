package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"oficina_diesel/internal/domain/entities"
	mock_interfaces "oficina_diesel/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_PayOrder(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.PayOrder(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.PayOrder(context.Background(), "os-1", nil)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, nil, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)

		_, err := uc.PayOrder(context.Background(), "os-1", nil)
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("nothing to charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, items, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		items.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return(nil, nil)

		_, err := uc.PayOrder(context.Background(), "os-1", nil)
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, items, gateway)

		paidAt := time.Now().UTC()
		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", AmountPaid: 130, PaymentDate: &paidAt}, nil)
		items.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return([]entities.BudgetItem{{TotalPrice: 130}}, nil)

		_, err := uc.PayOrder(context.Background(), "os-1", nil)
		if !errors.Is(err, ErrAlreadyPaid) {
			t.Fatalf("expected ErrAlreadyPaid, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, items, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		items.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return([]entities.BudgetItem{{TotalPrice: 130}}, nil)

		_, err := uc.PayOrder(context.Background(), "os-1", json.RawMessage("{not json"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, items, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		items.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return([]entities.BudgetItem{{TotalPrice: 130}}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.PayOrder(context.Background(), "os-1", nil)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("charge success stamps payment and derives paid", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(orders, items, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", AmountPaid: 30}, nil)
		items.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return([]entities.BudgetItem{
			{ID: "item-a", TotalPrice: 100},
			{ID: "item-b", TotalPrice: 30},
		}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["external_reference"] != "os-1" {
					t.Fatalf("payload not linked to order: %+v", m)
				}
				// outstanding = 130 - 30
				if m["transaction_amount"] != 100.0 {
					t.Fatalf("unexpected amount: %+v", m)
				}
				return "prov-1", "approved", payload, nil
			},
		)

		orders.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.Status != entities.StatusPaid {
					t.Fatalf("expected paid, got %s", o.Status)
				}
				if o.AmountPaid != 130 || o.BudgetAmount != 130 {
					t.Fatalf("unexpected amounts: %+v", o)
				}
				if o.PaymentDate == nil {
					t.Fatalf("expected payment date stamped")
				}
				return o, nil
			},
		)

		res, err := uc.PayOrder(context.Background(), "os-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusPaid || len(res.BudgetItems) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		items := mock_interfaces.NewMockIBudgetItemRepository(ctrl)
		uc := NewPaymentUseCase(orders, items, nil)

		orders.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		items.EXPECT().ListByServiceOrderID(gomock.Any(), "os-1").Return([]entities.BudgetItem{{TotalPrice: 50}}, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)

		res, err := uc.PayOrder(context.Background(), "os-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusPaid {
			t.Fatalf("expected paid, got %s", res.Status)
		}
	})
}
