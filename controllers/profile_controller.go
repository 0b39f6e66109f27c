package controllers

import (
	"log"
	"net/http"

	"autoshop-backend/middleware"
	"autoshop-backend/models"
	"autoshop-backend/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileSvc *services.ProfileService
}

func NewProfileController(svc *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileSvc: svc}
}

// GetProfile (GET /api/profile). A missing row is created on first access
// with defaults from the token claims.
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization required"})
		return
	}

	profile, err := ctrl.ProfileSvc.GetOrCreate(c.Request.Context(), claims.Subject, claims.Name, claims.Email)
	if err != nil {
		log.Printf("GetProfile error for account %s: %v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// UpdateProfile (PUT /api/profile) writes display fields only.
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization required"})
		return
	}

	var payload models.Profile
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid profile payload: " + err.Error()})
		return
	}

	profile, err := ctrl.ProfileSvc.Update(c.Request.Context(), claims.Subject, payload)
	if err != nil {
		log.Printf("UpdateProfile error for account %s: %v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}
