package handlers

import (
	"errors"
	"net/http"

	request "oficina_diesel/internal/adapter/http/dto/request"
	response "oficina_diesel/internal/adapter/http/dto/response"
	"oficina_diesel/internal/domain/entities"
	"oficina_diesel/internal/usecase"
	"oficina_diesel/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder handles first submissions: the engine assigns the ID,
// prices the budget and derives the initial status.
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Save(c.Request.Context(), payload.ToDraft(), "")
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// UpdateServiceOrder handles edits of an existing order: the full field set
// and budget item list replace what is stored, with items reconciled by ID.
func (h *ServiceOrderHandler) UpdateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Save(c.Request.Context(), payload.ToDraft(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// ListServiceOrders lists orders, optionally narrowed by ?status= which also
// accepts "all" and "uncompleted" (pending + in_progress).
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	filter := entities.StatusFilter(c.Query("status"))

	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func mapServiceOrderError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceOrderID), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
