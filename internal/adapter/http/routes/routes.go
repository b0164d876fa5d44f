package routes

import (
	"log"
	"strconv"

	_ "garagemate/docs" // This will be auto-generated
	"garagemate/internal/adapter/http/handlers"
	repository2 "garagemate/internal/adapter/persistence/repository"
	"garagemate/internal/infrastructure/auth"
	"garagemate/internal/infrastructure/database"
	"garagemate/internal/infrastructure/reports"
	"garagemate/internal/usecase"

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

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	salaryRepo := repository2.NewSalaryDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	warrantyRepo := repository2.NewWarrantyDynamoRepository(ddb)
	orderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	counterRepo := repository2.NewCounterDynamoRepository(ddb)

	authorizer := auth.NewSharedSecretAuthorizerFromEnv()
	reportWriter := reports.NewExcelReportWriter()

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, authorizer)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, customerRepo)
	catalogUseCase := usecase.NewCatalogUseCase(serviceRepo, productRepo)
	ledgerUseCase := usecase.NewLedgerUseCase(employeeRepo, salaryRepo, expenseRepo, warrantyRepo, customerRepo)
	workOrderUseCase := usecase.NewWorkOrderUseCase(orderRepo, customerRepo, vehicleRepo, serviceRepo, productRepo, counterRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, expenseRepo, salaryRepo, productRepo, reportWriter)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	ledgerHandler := handlers.NewLedgerHandler(ledgerUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addGarageRoutes(api, customerHandler, vehicleHandler, catalogHandler, ledgerHandler, workOrderHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
