package routes

import (
	"log"
	"os"
	"strconv"

	_ "oficina_diesel/docs" // This will be auto-generated
	"oficina_diesel/internal/adapter/http/handlers"
	repository2 "oficina_diesel/internal/adapter/persistence/repository"
	"oficina_diesel/internal/infrastructure/database"
	"oficina_diesel/internal/infrastructure/payments"
	"oficina_diesel/internal/usecase"
	"oficina_diesel/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	itemRepo := repository2.NewBudgetItemDynamoRepository(ddb)

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, itemRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, itemRepo, paymentGateway)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
