// controllers/booking_controller.go
package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"autoshop-backend/models"
	"autoshop-backend/services"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Vehicle       string `json:"vehicle" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
	Message       string `json:"message"`
}

type UpdateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type ProcessPaymentPayload struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type AttachPhotoPayload struct {
	URL string `json:"url" binding:"required"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func parsePreferredDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateBooking (POST /api/bookings) is the booking form submission.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "Invalid request body", "details": err.Error()}})
		return
	}

	date, ok := parsePreferredDate(payload.PreferredDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidDate", "message": "preferred_date must be YYYY-MM-DD"}})
		return
	}

	booking := models.Booking{
		CustomerName:  payload.CustomerName,
		Email:         payload.Email,
		Phone:         payload.Phone,
		Vehicle:       payload.Vehicle,
		ServiceType:   payload.ServiceType,
		PreferredDate: date,
		PreferredTime: payload.PreferredTime,
		Message:       payload.Message,
	}

	if err := ctrl.BookingSvc.Create(c.Request.Context(), &booking); err != nil {
		if strings.Contains(err.Error(), "validation") {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.validation", "message": err.Error()}})
			return
		}
		log.Printf("CreateBooking error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.createBookingFailed", "message": "Failed to create booking"}})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": booking})
}

// GetBookings (GET /api/bookings) returns all records, preferred date
// descending, with derived finance fields.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List(c.Request.Context())
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchBookings", "message": "Failed to retrieve bookings"}})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id := c.Param("id")
	booking, err := ctrl.BookingSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "booking_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
			return
		}
		log.Printf("GetBookingDetails error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.fetchBookingFailed", "message": "Failed to retrieve booking"}})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateStatus (PATCH /api/bookings/:id/status).
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	var payload UpdateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "status is required"}})
		return
	}

	err := ctrl.BookingSvc.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "validation"):
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidStatus", "message": err.Error()}})
		case strings.Contains(err.Error(), "booking_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
		default:
			log.Printf("UpdateStatus error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.updateStatusFailed", "message": "Failed to update status"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ProcessPayment (POST /api/bookings/:id/payment) flips pending to completed
// and stamps the payment method and date. The transition is one-way.
func (ctrl *BookingController) ProcessPayment(c *gin.Context) {
	var payload ProcessPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "payment_method is required"}})
		return
	}

	booking, err := ctrl.BookingSvc.ProcessPayment(c.Request.Context(), c.Param("id"), payload.PaymentMethod)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "booking_not_found"):
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
		case strings.Contains(err.Error(), "booking_not_pending"):
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.bookingNotPending", "message": "Only pending bookings can be paid"}})
		case strings.Contains(err.Error(), "validation"):
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.validation", "message": err.Error()}})
		default:
			log.Printf("ProcessPayment error for booking %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.paymentFailed", "message": "Failed to process payment"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}

// AttachPhoto (POST /api/bookings/:id/photos) appends a work photo URL.
func (ctrl *BookingController) AttachPhoto(c *gin.Context) {
	var payload AttachPhotoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "url is required"}})
		return
	}

	booking, err := ctrl.BookingSvc.AttachPhoto(c.Request.Context(), c.Param("id"), payload.URL)
	if err != nil {
		if strings.Contains(err.Error(), "booking_not_found") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "error.bookingNotFound", "message": "Booking not found"}})
			return
		}
		log.Printf("AttachPhoto error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.attachPhotoFailed", "message": "Failed to attach photo"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": booking})
}
