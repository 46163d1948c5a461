package routes

import (
	"oficina_diesel/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, paymentHandler *handlers.PaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateServiceOrder)
		orders.GET("", orderHandler.ListServiceOrders)
		orders.GET("/:id", orderHandler.GetServiceOrder)
		orders.PUT("/:id", orderHandler.UpdateServiceOrder)

		orders.POST("/:id/payments", paymentHandler.PayServiceOrder)
	}
}
