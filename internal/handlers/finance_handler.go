package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"spa-records/internal/dto"
	"spa-records/internal/services"
)

// FinanceHandler handles financial-report HTTP requests
type FinanceHandler struct {
	finance services.FinanceServiceInterface
	metrics services.MetricsRecorderInterface
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(
	finance services.FinanceServiceInterface,
	metrics services.MetricsRecorderInterface,
) *FinanceHandler {
	return &FinanceHandler{finance: finance, metrics: metrics}
}

// GetReport returns the derived financial summary
func (h *FinanceHandler) GetReport(c echo.Context) error {
	start := time.Now()

	report := h.finance.Report()

	h.metrics.RecordProcessingTime("finance_report", time.Since(start))
	h.metrics.IncrementCounter("finance_report", map[string]string{"status": "success"})

	response := dto.FinanceReportResponse{
		SpaName:       report.SpaName,
		Currency:      report.Currency,
		TotalIncome:   report.TotalIncome.InexactFloat64(),
		TotalExpenses: report.TotalExpenses.InexactFloat64(),
		NetProfit:     report.NetProfit.InexactFloat64(),
		ProfitMargin:  report.ProfitMargin.InexactFloat64(),
		Status:        report.Status,
		Efficiency:    report.Efficiency,
		GeneratedAt:   report.GeneratedAt.Format(time.RFC3339),
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: response})
}
