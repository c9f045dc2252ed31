package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/RishabhDevDogra/Ledger-X/internal/core/ports/services"
	"github.com/RishabhDevDogra/Ledger-X/internal/dto"
	"github.com/RishabhDevDogra/Ledger-X/internal/middleware"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/total-debits", h.getTotalDebits)
		reports.GET("/total-credits", h.getTotalCredits)
	}
}

// getTrialBalance godoc
// @Summary Get the trial balance report
// @Description Aggregates posted journal lines per account code, ordered by code
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to compute trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getTotalDebits godoc
// @Summary Get total posted debits
// @Description Sums the debit side of every posted journal line
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TotalResponse
// @Failure 500 {object} map[string]string "Failed to compute total debits"
// @Router /reports/total-debits [get]
func (h *reportingHandler) getTotalDebits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.reportingService.TotalDebits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute total debits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total debits"})
		return
	}

	c.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

// getTotalCredits godoc
// @Summary Get total posted credits
// @Description Sums the credit side of every posted journal line
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TotalResponse
// @Failure 500 {object} map[string]string "Failed to compute total credits"
// @Router /reports/total-credits [get]
func (h *reportingHandler) getTotalCredits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.reportingService.TotalCredits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute total credits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total credits"})
		return
	}

	c.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}
