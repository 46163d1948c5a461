package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_diesel/internal/adapter/http/handlers/mocks"
	"oficina_diesel/internal/domain/entities"
	"oficina_diesel/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const orderPayload = `{
	"customerName": "João Silva",
	"customerPhone": "(11) 99999-9999",
	"serviceDescription": "Revisão da bomba",
	"serviceType": "conserto_bomba",
	"creationDate": "2024-05-10T12:00:00Z",
	"budgetItems": [{"description": "Reparo", "quantity": 2, "unitPrice": 50}]
}`

func TestServiceOrderHandler_CreateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error names the field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		uc.EXPECT().Save(gomock.Any(), gomock.Any(), "").Return(entities.ServiceOrder{}, &usecase.ValidationError{Field: "customerName", Message: "must not be empty"})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(orderPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["code"] != "VALIDATION_ERROR" || body["message"] == "" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		uc.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(usecase.ServiceOrderDraft{}), "").DoAndReturn(
			func(_ any, draft usecase.ServiceOrderDraft, _ string) (entities.ServiceOrder, error) {
				if draft.CustomerName != "João Silva" || len(draft.BudgetItems) != 1 {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return entities.ServiceOrder{ID: "os-1", BudgetAmount: 100, Status: entities.StatusPending}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(orderPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_UpdateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.UpdateServiceOrder)

		uc.EXPECT().Save(gomock.Any(), gomock.Any(), "os-404").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/os-404", bytes.NewBufferString(orderPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.UpdateServiceOrder)

		uc.EXPECT().Save(gomock.Any(), gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusPending}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/os-1", bytes.NewBufferString(orderPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_GetServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetServiceOrder)

		uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetServiceOrder)

		uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusPaid}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/os-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ListServiceOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes the status filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListServiceOrders)

		uc.EXPECT().List(gomock.Any(), entities.FilterUncompleted).Return([]entities.ServiceOrder{{ID: "os-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=uncompleted", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid filter maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders", h.ListServiceOrders)

		uc.EXPECT().List(gomock.Any(), entities.StatusFilter("cancelled")).Return(nil, usecase.ErrInvalidStatusFilter)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=cancelled", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
