package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "workshop_jobs/docs" // This will be auto-generated
	"workshop_jobs/internal/adapter/http/handlers"
	repository2 "workshop_jobs/internal/adapter/persistence/repository"
	"workshop_jobs/internal/infrastructure/catalog"
	"workshop_jobs/internal/infrastructure/database"
	"workshop_jobs/internal/infrastructure/payments"
	"workshop_jobs/internal/usecase"
	"workshop_jobs/internal/usecase/interfaces"
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
	snapshotRepo := newSnapshotRepository()

	store, err := usecase.NewStore(context.Background(), snapshotRepo)
	if err != nil {
		log.Fatalf("Failed to load job store snapshot: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(store, paymentGateway)
	procurementUseCase := usecase.NewProcurementUseCase(store)
	partCatalog := catalog.NewStaticCatalog()

	jobHandler := handlers.NewJobHandler(jobUseCase)
	customerHandler := handlers.NewCustomerJobHandler(jobUseCase)
	procurementHandler := handlers.NewProcurementHandler(procurementUseCase)
	catalogHandler := handlers.NewCatalogHandler(partCatalog)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, customerHandler)
	addProcurementRoutes(v1, procurementHandler, catalogHandler)
}

// newSnapshotRepository picks the persistence backend from SNAPSHOT_BACKEND:
// dynamodb (default), sqlite, or memory.
func newSnapshotRepository() interfaces.ISnapshotRepository {
	switch os.Getenv("SNAPSHOT_BACKEND") {
	case "sqlite":
		db, err := database.ConnectSqlite()
		if err != nil {
			log.Fatalf("Failed to open sqlite backend: %v", err)
		}
		repo, err := repository2.NewSnapshotSqliteRepository(db)
		if err != nil {
			log.Fatalf("Failed to init sqlite snapshot repository: %v", err)
		}
		log.Printf("[routes] snapshot backend: sqlite")
		return repo
	case "memory":
		log.Printf("[routes] snapshot backend: memory (state is not durable)")
		return repository2.NewSnapshotMemoryRepository()
	default:
		log.Printf("[routes] snapshot backend: dynamodb")
		return repository2.NewSnapshotDynamoRepository(database.ConnectDynamoDB())
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
