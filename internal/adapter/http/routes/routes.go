package routes

import (
	"context"
	"log"
	"strconv"

	_ "construction_estimation/docs" // swagger docs, generated by swag
	"construction_estimation/internal/adapter/http/handlers"
	"construction_estimation/internal/adapter/persistence/repository"
	"construction_estimation/internal/infrastructure/database"
	"construction_estimation/internal/seed"
	"construction_estimation/internal/usecase"

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

	clientRepo := repository.NewClientDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, clientRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, clientRepo, estimateRepo)

	if err := seed.Run(context.Background(), clientRepo, estimateRepo, invoiceRepo); err != nil {
		log.Printf("sample data seeding skipped: %v", err)
	}

	clientHandler := handlers.NewClientHandler(clientUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConstructionRoutes(v1, clientHandler, estimateHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
