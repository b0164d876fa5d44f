package reports

import (
	"bytes"
	"fmt"

	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// ExcelReportWriter renders dashboard data as an .xlsx workbook with a
// summary sheet and one row per work order.

type ExcelReportWriter struct{}

var _ interfaces.IReportWriter = (*ExcelReportWriter)(nil)

func NewExcelReportWriter() *ExcelReportWriter {
	return &ExcelReportWriter{}
}

func (w *ExcelReportWriter) DashboardWorkbook(stats entities.DashboardStats, orders []entities.WorkOrder) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummarySheet(f, stats); err != nil {
		return nil, err
	}
	if err := w.writeOrdersSheet(f, orders); err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *ExcelReportWriter) writeSummarySheet(f *excelize.File, stats entities.DashboardStats) error {
	const sheet = "Summary"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	f.SetActiveSheet(index)

	rows := []struct {
		label string
		value interface{}
	}{
		{"Total Income", stats.TotalIncome},
		{"Total Expenses", stats.TotalExpenses},
		{"Total Profit", stats.TotalProfit},
		{"Cash Income", stats.CashIncome},
		{"UPI Income", stats.UPIIncome},
		{"Services Income", stats.ServicesIncome},
		{"Orders", stats.OrderCount},
		{"Services Performed", stats.TotalServices},
		{"Products Sold", stats.TotalSold},
		{"Products In Stock", stats.TotalStock},
	}
	for i, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), r.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), r.value)
	}
	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "B", 15)
	return nil
}

func (w *ExcelReportWriter) writeOrdersSheet(f *excelize.File, orders []entities.WorkOrder) error {
	const sheet = "Work Orders"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	headers := []string{
		"Serial", "Status", "Created", "Customer ID", "Vehicle ID",
		"Service Charges", "Product Cost", "Discount", "Total", "Payment Method",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetRowStyle(sheet, 1, 1, headerStyle)
	}

	for i, o := range orders {
		row := i + 2
		subtotal := o.TotalServiceCharge + o.TotalProductCost
		values := []interface{}{
			o.Serial,
			string(o.Status),
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.CustomerID,
			o.VehicleID,
			o.TotalServiceCharge,
			o.TotalProductCost,
			o.Discount.AmountOn(subtotal),
			o.TotalAmount,
			string(o.Payment.Method),
		}
		for col, v := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	for i := range headers {
		col := string('A' + rune(i))
		f.SetColWidth(sheet, col, col, 16)
	}
	return nil
}
