package response

import "garagemate/internal/domain/entities"

type DashboardResponse struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalProfit   float64 `json:"total_profit"`

	CashIncome float64 `json:"cash_income"`
	UPIIncome  float64 `json:"upi_income"`

	TotalStock    int `json:"total_stock"`
	TotalSold     int `json:"total_sold"`
	TotalServices int `json:"total_services"`
	OrderCount    int `json:"order_count"`

	ServicesIncome float64 `json:"services_income"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalIncome:    s.TotalIncome,
		TotalExpenses:  s.TotalExpenses,
		TotalProfit:    s.TotalProfit,
		CashIncome:     s.CashIncome,
		UPIIncome:      s.UPIIncome,
		TotalStock:     s.TotalStock,
		TotalSold:      s.TotalSold,
		TotalServices:  s.TotalServices,
		OrderCount:     s.OrderCount,
		ServicesIncome: s.ServicesIncome,
	}
}
