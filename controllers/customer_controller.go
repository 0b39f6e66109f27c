package controllers

import (
	"log"
	"net/http"
	"strings"

	"autoshop-backend/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// GetCustomers (GET /api/customers?q=&cohort=) returns the aggregate view,
// sorted by last service date descending.
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	cohort := strings.ToLower(strings.TrimSpace(c.Query("cohort")))
	switch cohort {
	case "", services.CohortAll, services.CohortFrequent, services.CohortNew:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidCohort", "message": "cohort must be all, frequent, or new"}})
		return
	}

	customers, err := ctrl.CustomerSvc.Search(c.Request.Context(), c.Query("q"), cohort)
	if err != nil {
		log.Printf("GetCustomers error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchCustomers", "message": "Failed to retrieve customers"}})
		return
	}

	c.JSON(http.StatusOK, customers)
}
