package routes

import (
	"garagemate/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers  = "/customer"
	PathVehicles   = "/vehicle"
	PathServices   = "/service"
	PathProducts   = "/product"
	PathEmployees  = "/employee"
	PathSalaries   = "/salary"
	PathExpenses   = "/expense"
	PathWarranties = "/warranty"
	PathWorkOrders = "/workorder"
	PathDashboard  = "/dashboard"
)

func addGarageRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	vehicleHandler *handlers.VehicleHandler,
	catalogHandler *handlers.CatalogHandler,
	ledgerHandler *handlers.LedgerHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
		customers.POST("/verify-password", customerHandler.VerifyPassword)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", catalogHandler.CreateService)
		services.GET("", catalogHandler.ListServices)
		services.GET("/:id", catalogHandler.GetService)
		services.PUT("/:id", catalogHandler.UpdateService)
		services.DELETE("/:id", catalogHandler.DeleteService)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)
	}

	employees := rg.Group(PathEmployees)
	{
		employees.POST("", ledgerHandler.CreateEmployee)
		employees.GET("", ledgerHandler.ListEmployees)
		employees.GET("/:id", ledgerHandler.GetEmployee)
		employees.PUT("/:id", ledgerHandler.UpdateEmployee)
		employees.DELETE("/:id", ledgerHandler.DeleteEmployee)
	}

	salaries := rg.Group(PathSalaries)
	{
		salaries.POST("", ledgerHandler.CreateSalary)
		salaries.GET("", ledgerHandler.ListSalaries)
		salaries.DELETE("/:id", ledgerHandler.DeleteSalary)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", ledgerHandler.CreateExpense)
		expenses.GET("", ledgerHandler.ListExpenses)
		expenses.DELETE("/:id", ledgerHandler.DeleteExpense)
	}

	warranties := rg.Group(PathWarranties)
	{
		warranties.POST("", ledgerHandler.CreateWarranty)
		warranties.GET("", ledgerHandler.ListWarranties)
		warranties.DELETE("/:id", ledgerHandler.DeleteWarranty)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.CreateWorkOrder)
		workOrders.GET("", workOrderHandler.ListWorkOrders)
		workOrders.GET("/:id", workOrderHandler.GetWorkOrder)
		workOrders.PUT("/:id", workOrderHandler.UpdateWorkOrder)
		workOrders.DELETE("/:id", workOrderHandler.DeleteWorkOrder)
		workOrders.GET("/vehicle/:vehicle_id", workOrderHandler.ListWorkOrdersByVehicle)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("", dashboardHandler.GetDashboard)
		dashboard.GET("/export", dashboardHandler.ExportDashboard)
	}
}
