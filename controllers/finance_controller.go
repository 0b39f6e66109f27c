package controllers

import (
	"log"
	"net/http"
	"strings"

	"autoshop-backend/services"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	FinanceSvc *services.FinanceService
}

func NewFinanceController(svc *services.FinanceService) *FinanceController {
	return &FinanceController{FinanceSvc: svc}
}

// GetReport (GET /api/finance/report?period=weekly|biweekly|monthly).
// Defaults to monthly. Recomputed from the full record set per request.
func (ctrl *FinanceController) GetReport(c *gin.Context) {
	period := strings.ToLower(strings.TrimSpace(c.Query("period")))
	if period == "" {
		period = services.PeriodMonthly
	}

	report, err := ctrl.FinanceSvc.Report(c.Request.Context(), period)
	if err != nil {
		if strings.Contains(err.Error(), "validation") {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPeriod", "message": "period must be weekly, biweekly, or monthly"}})
			return
		}
		log.Printf("GetReport error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchReport", "message": "Failed to build report"}})
		return
	}

	c.JSON(http.StatusOK, report)
}
