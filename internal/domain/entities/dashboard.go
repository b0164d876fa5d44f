package entities

// DashboardStats is the read-only rollup shown on the dashboard for a time
// filter. All values come from linear scans over the filtered collections;
// at single-shop scale nothing is materialized.

type DashboardStats struct {
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
