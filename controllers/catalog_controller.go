package controllers

import (
	"log"
	"net/http"
	"strings"

	"autoshop-backend/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogSvc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogSvc: svc}
}

// GetServices (GET /api/services) lists available services, newest first.
func (ctrl *CatalogController) GetServices(c *gin.Context) {
	items, err := ctrl.CatalogSvc.Available(c.Request.Context())
	if err != nil {
		log.Printf("GetServices error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchServices", "message": "Failed to retrieve services"}})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetQuote (GET /api/pricing/quote?service=) returns the checkout total for
// a service name. An unknown name quotes at the default price.
func (ctrl *CatalogController) GetQuote(c *gin.Context) {
	service := strings.TrimSpace(c.Query("service"))
	if service == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.missingService", "message": "service query parameter is required"}})
		return
	}
	c.JSON(http.StatusOK, services.QuoteFor(service))
}
