package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"autoshop-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var bookingEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Decorate fills the read-time finance fields: the amount is always a
// function of the service type via the price table, and the invoice number
// comes from the id prefix.
func Decorate(b *models.Booking) {
	b.Amount = ServicePrice(b.ServiceType)
	b.InvoiceNumber = InvoiceNumber(b.ID)
}

func validateBooking(b *models.Booking) error {
	b.CustomerName = strings.TrimSpace(b.CustomerName)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Vehicle = strings.TrimSpace(b.Vehicle)
	b.ServiceType = strings.TrimSpace(b.ServiceType)
	b.PreferredTime = strings.TrimSpace(b.PreferredTime)

	switch {
	case b.CustomerName == "":
		return fmt.Errorf("validation: customer_name is required")
	case b.Email == "":
		return fmt.Errorf("validation: email is required")
	case !bookingEmailRegex.MatchString(strings.ToLower(b.Email)):
		return fmt.Errorf("validation: invalid email")
	case b.Phone == "":
		return fmt.Errorf("validation: phone is required")
	case b.Vehicle == "":
		return fmt.Errorf("validation: vehicle is required")
	case b.ServiceType == "":
		return fmt.Errorf("validation: service_type is required")
	case b.PreferredDate.IsZero():
		return fmt.Errorf("validation: preferred_date is required")
	case b.PreferredTime == "":
		return fmt.Errorf("validation: preferred_time is required")
	}
	return nil
}

// Create stores a booking form submission. Validation is shallow: required
// fields and an email shape check, everything else is trusted to the store.
func (s *BookingService) Create(ctx context.Context, b *models.Booking) error {
	if err := validateBooking(b); err != nil {
		return err
	}
	b.Status = models.StatusPending
	if err := s.DB.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	Decorate(b)
	return nil
}

// List returns every booking ordered by preferred date descending, with the
// derived finance fields filled in.
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.WithContext(ctx).
		Order("preferred_date DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	for i := range list {
		Decorate(&list[i])
	}
	return list, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	Decorate(&b)
	return &b, nil
}

// UpdateStatus sets the lifecycle status of one record. Cancellation is a
// soft transition: the row stays visible to the finance views.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status string) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("validation: invalid status %q", status)
	}
	res := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.New("booking_not_found")
	}
	return nil
}

// ApplyPayment is the in-memory half of payment processing: pending flips to
// completed and the payment method and date are stamped. The transition is
// one-way; anything not pending is rejected.
func ApplyPayment(b *models.Booking, method string, now time.Time) error {
	if b.Status != models.StatusPending {
		return errors.New("booking_not_pending")
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	b.Status = models.StatusCompleted
	b.PaymentStatus = models.PaymentStatusPaid
	b.PaymentMethod = strings.TrimSpace(method)
	b.PaymentDate = &day
	return nil
}

// ProcessPayment flips one pending booking to completed inside a
// transaction. Last writer wins; there is no version check.
func (s *BookingService) ProcessPayment(ctx context.Context, id string, method string) (*models.Booking, error) {
	if strings.TrimSpace(method) == "" {
		return nil, fmt.Errorf("validation: payment method is required")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if err := ApplyPayment(&b, method, time.Now()); err != nil {
			return err
		}

		return tx.Model(&models.Booking{}).Where("id = ?", id).Updates(map[string]interface{}{
			"status":         b.Status,
			"payment_status": b.PaymentStatus,
			"payment_method": b.PaymentMethod,
			"payment_date":   b.PaymentDate,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	// Full re-fetch after the write; the caller sees the stored row.
	return s.GetByID(ctx, id)
}

// AttachPhoto appends an uploaded work photo URL to a booking record.
func (s *BookingService) AttachPhoto(ctx context.Context, id string, url string) (*models.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	photos, err := appendJSONList(b.Photos, url)
	if err != nil {
		return nil, fmt.Errorf("failed to update photo list: %w", err)
	}

	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("photos", photos).Error; err != nil {
		return nil, fmt.Errorf("failed to attach photo: %w", err)
	}
	b.Photos = photos
	return b, nil
}

func appendJSONList(raw datatypes.JSON, value string) (datatypes.JSON, error) {
	list := []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
	}
	list = append(list, value)
	out, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}
