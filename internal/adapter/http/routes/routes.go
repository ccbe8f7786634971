package routes

import (
	"log"
	"strconv"

	_ "github.com/kwamkid/joolz-factory-sub006/docs" // This will be auto-generated
	"github.com/kwamkid/joolz-factory-sub006/internal/adapter/http/handlers"
	repository2 "github.com/kwamkid/joolz-factory-sub006/internal/adapter/persistence/repository"
	"github.com/kwamkid/joolz-factory-sub006/internal/infrastructure/database"
	"github.com/kwamkid/joolz-factory-sub006/internal/infrastructure/payments"
	"github.com/kwamkid/joolz-factory-sub006/internal/usecase"

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

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	gatewayConfigRepo := repository2.NewGatewayConfigDynamoRepository(ddb)
	paymentRecordRepo := repository2.NewPaymentRecordDynamoRepository(ddb)

	beamGateway := payments.NewBeamGateway()

	paymentLinkUseCase := usecase.NewPaymentLinkUseCase(paymentRecordRepo, orderRepo, customerRepo, gatewayConfigRepo, beamGateway)

	paymentLinkHandler := handlers.NewPaymentLinkHandler(paymentLinkUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentLinkHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
