package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking lifecycle statuses. StatusCancelled keeps the row visible to
// finance views (soft state transition, never a hard delete).
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const PaymentStatusPaid = "paid"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CustomerName string `gorm:"column:customer_name;size:255" json:"customer_name"`
	Email        string `gorm:"size:150;index" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`
	Vehicle      string `gorm:"size:255" json:"vehicle"`

	// ServiceType is free text from the booking form, matched
	// case-insensitively against the price table at read time.
	ServiceType   string    `gorm:"column:service_type;size:150" json:"service_type"`
	PreferredDate time.Time `gorm:"column:preferred_date;index" json:"preferred_date"`
	PreferredTime string    `gorm:"column:preferred_time;size:8" json:"preferred_time"`
	Message       string    `gorm:"type:text" json:"message,omitempty"`

	Status string `gorm:"size:32;default:pending" json:"status"`

	// Payment fields are only ever written by the payment flow.
	PaymentStatus string     `gorm:"column:payment_status;size:32" json:"payment_status,omitempty"`
	PaymentMethod string     `gorm:"column:payment_method;size:64" json:"payment_method,omitempty"`
	PaymentDate   *time.Time `gorm:"column:payment_date" json:"payment_date,omitempty"`

	// Work photos attached by admins (public upload URLs).
	Photos datatypes.JSON `gorm:"column:photos" json:"photos,omitempty"`

	// Derived at read time from the price table, never stored.
	Amount        float64 `gorm:"-" json:"amount"`
	InvoiceNumber string  `gorm:"-" json:"invoice_number,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
