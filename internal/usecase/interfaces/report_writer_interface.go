package interfaces

import "garagemate/internal/domain/entities"

// IReportWriter renders dashboard data into a downloadable spreadsheet.

type IReportWriter interface {
	DashboardWorkbook(stats entities.DashboardStats, orders []entities.WorkOrder) ([]byte, error)
}
