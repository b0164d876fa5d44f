package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"garagemate/internal/adapter/http/handlers/mocks"
	"garagemate/internal/domain/entities"
	"garagemate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/dashboard", h.GetDashboard)

		req := httptest.NewRequest(http.MethodGet, "/dashboard?date=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/dashboard", h.GetDashboard)

		uc.EXPECT().Summarize(gomock.Any(), entities.DateFilter{Month: 3, Year: 2025}).Return(entities.DashboardStats{
			TotalIncome:   2400,
			TotalExpenses: 2000,
			TotalProfit:   400,
			CashIncome:    1300,
			UPIIncome:     1100,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dashboard?month=3&year=2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				TotalProfit float64 `json:"total_profit"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.Success || resp.Data.TotalProfit != 400 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDashboardHandler_ExportDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams a workbook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/dashboard/export", h.ExportDashboard)

		workbook := []byte("PK\x03\x04 fake workbook")
		uc.EXPECT().Export(gomock.Any(), entities.DateFilter{Year: 2025}).Return(workbook, nil)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/export?year=2025", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		cd := w.Header().Get("Content-Disposition")
		if !strings.HasPrefix(cd, `attachment; filename="dashboard-`) || !strings.HasSuffix(cd, `.xlsx"`) {
			t.Fatalf("unexpected content disposition: %s", cd)
		}
		if !bytes.Equal(w.Body.Bytes(), workbook) {
			t.Fatalf("body does not match workbook bytes")
		}
	})

	t.Run("report writer unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/dashboard/export", h.ExportDashboard)

		uc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrReportWriterNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
