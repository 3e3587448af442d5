package routes

import (
	"log"
	"os"
	"strconv"

	_ "paybridge/docs" // This will be auto-generated
	"paybridge/internal/adapter/http/handlers"
	"paybridge/internal/adapter/persistence/repository"
	"paybridge/internal/infrastructure/database"
	"paybridge/internal/infrastructure/gateways/click"
	"paybridge/internal/infrastructure/gateways/mercadopago"
	"paybridge/internal/infrastructure/gateways/payme"
	"paybridge/internal/usecase"
	"paybridge/internal/usecase/interfaces"

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
	providers := map[string]interfaces.IPaymentProvider{}

	clickProvider, err := click.New(click.ConfigFromEnv(click.Config{}))
	if err != nil {
		log.Printf("[routes] click provider not configured: %v", err)
	} else {
		providers["click"] = clickProvider
	}

	paymeCfg := payme.ConfigFromEnv(payme.Config{})
	paymeProvider, err := payme.New(paymeCfg)
	if err != nil {
		log.Printf("[routes] payme provider not configured: %v", err)
	} else {
		providers["payme"] = paymeProvider
	}

	mpProvider, err := mercadopago.New(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[routes] mercadopago provider not configured: %v", err)
	} else {
		providers["mercadopago"] = mpProvider
	}

	paymentUseCase := usecase.NewPaymentUseCase(providers)

	// Both stores share one client; the in-memory backend is for local runs.
	var intents interfaces.IPaymentIntentStore
	var store interfaces.ITransactionStore
	if os.Getenv("TRANSACTIONS_BACKEND") == "memory" {
		store = repository.NewMemoryTransactionStore()
	} else {
		ddb := database.ConnectDynamoDB()
		store = repository.NewTransactionDynamoRepository(ddb)
		intents = repository.NewPaymentIntentDynamoRepository(ddb)
	}
	if intents != nil {
		paymentUseCase.SetIntentStore(intents)
	}
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)

	clickHandler, paymeHandler := webhookHandlers(clickProvider, paymeCfg, store)
	addWebhookRoutes(v1, clickHandler, paymeHandler)
}

// webhookHandlers builds the inbound callback handlers.
func webhookHandlers(clickProvider *click.Provider, paymeCfg payme.Config, store interfaces.ITransactionStore) (*handlers.ClickWebhookHandler, *handlers.PaymeWebhookHandler) {
	var clickHandler *handlers.ClickWebhookHandler
	if clickProvider != nil {
		clickHandler = handlers.NewClickWebhookHandler(clickProvider)
	}

	var paymeHandler *handlers.PaymeWebhookHandler
	webhook, err := payme.NewWebhook(paymeCfg, store)
	if err != nil {
		log.Printf("[routes] payme webhook not configured: %v", err)
	} else {
		paymeHandler = handlers.NewPaymeWebhookHandler(webhook)
	}

	return clickHandler, paymeHandler
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
