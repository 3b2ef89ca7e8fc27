package routes

import (
	"log"
	"os"
	"strconv"

	_ "motolease/docs" // This will be auto-generated
	"motolease/internal/adapter/http/handlers"
	repository2 "motolease/internal/adapter/persistence/repository"
	"motolease/internal/infrastructure/database"
	"motolease/internal/infrastructure/payments"
	"motolease/internal/infrastructure/services"
	"motolease/internal/usecase"

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

	recordRepo := repository2.NewPaymentRecordDynamoRepository(ddb)
	loanAppRepo := repository2.NewLoanApplicationDynamoRepository(ddb)
	installmentRepo := repository2.NewInstallmentDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	partsOrderRepo := repository2.NewPartsOrderDynamoRepository(ddb)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb)
	eventRepo := repository2.NewBusinessEventDynamoRepository(ddb)

	provider, err := payments.NewMercadoPagoProvider(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("Mercado Pago provider not configured: %v", err)
	}

	reconcileUseCase := usecase.NewPaymentReconcileUseCase(usecase.PaymentReconcileDeps{
		Provider:         provider,
		Records:          recordRepo,
		LoanApplications: loanAppRepo,
		Installments:     installmentRepo,
		Contracts:        contractRepo,
		Vehicles:         vehicleRepo,
		PartsOrders:      partsOrderRepo,
		Invoices:         services.NewInvoiceClient(),
		Stock:            services.NewStockClient(),
		Events:           eventRepo,
		EndOfPlan:        services.NewEndOfPlanClient(),
	})
	subscriptionSyncUseCase := usecase.NewSubscriptionSyncUseCase(provider, subscriptionRepo)
	recordUseCase := usecase.NewPaymentRecordUseCase(recordRepo)

	webhookHandler := handlers.NewWebhookHandler(reconcileUseCase, subscriptionSyncUseCase)
	recordHandler := handlers.NewPaymentRecordHandler(recordUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, webhookHandler)
	addPaymentRecordRoutes(v1, recordHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
