package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	response "oficina_diesel/internal/adapter/http/dto/response"
	"oficina_diesel/internal/usecase"
	"oficina_diesel/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler charges a service order's outstanding budget through the
// configured payment gateway.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PayServiceOrder accepts an optional provider payload as the request body
// and forwards it enriched with the order linkage and the charged amount.
func (h *PaymentHandler) PayServiceOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.PayOrder(c.Request.Context(), c.Param("id"), json.RawMessage(body))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToCharge), errors.Is(err, usecase.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPLICABLE", "Order has nothing to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
