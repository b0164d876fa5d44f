package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	request "garagemate/internal/adapter/http/dto/request"
	response "garagemate/internal/adapter/http/dto/response"
	"garagemate/internal/usecase"
	"garagemate/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler serves the financial rollup and its spreadsheet export.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetDashboard returns summary statistics for the requested period.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	filter, err := request.ParseDateFilter(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	stats, err := h.usecase.Summarize(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[dashboard][handler] summarize failed err=%v", err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Dashboard summary", response.FromDashboardStats(stats)))
}

// ExportDashboard streams the dashboard as an .xlsx download.
func (h *DashboardHandler) ExportDashboard(c *gin.Context) {
	filter, err := request.ParseDateFilter(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	workbook, err := h.usecase.Export(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[dashboard][handler] export failed err=%v", err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("dashboard-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDateField):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportWriterNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORT_UNAVAILABLE", "Spreadsheet export not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
