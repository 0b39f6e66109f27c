package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"autoshop-backend/models"
	"autoshop-backend/services"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Board *services.AppointmentBoard
}

func NewAppointmentController(board *services.AppointmentBoard) *AppointmentController {
	return &AppointmentController{Board: board}
}

func parseBoardID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidId", "message": "appointment id must be numeric"}})
		return 0, false
	}
	return id, true
}

// GetAppointments (GET /api/admin/appointments?date=&sort=time).
func (ctrl *AppointmentController) GetAppointments(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	sortByTime := strings.EqualFold(c.Query("sort"), "time")
	c.JSON(http.StatusOK, ctrl.Board.List(date, sortByTime))
}

func (ctrl *AppointmentController) CreateAppointment(c *gin.Context) {
	var entry models.Appointment
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request body", "details": err.Error()}})
		return
	}

	created, err := ctrl.Board.Create(entry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.validation", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAppointment is a full-record replace by id.
func (ctrl *AppointmentController) UpdateAppointment(c *gin.Context) {
	id, ok := parseBoardID(c)
	if !ok {
		return
	}

	var entry models.Appointment
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request body", "details": err.Error()}})
		return
	}

	updated, err := ctrl.Board.Update(id, entry)
	if err != nil {
		if strings.Contains(err.Error(), "appointment_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.appointmentNotFound", "message": "Appointment not found"}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.validation", "message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ctrl *AppointmentController) DeleteAppointment(c *gin.Context) {
	id, ok := parseBoardID(c)
	if !ok {
		return
	}

	if err := ctrl.Board.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.appointmentNotFound", "message": "Appointment not found"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
