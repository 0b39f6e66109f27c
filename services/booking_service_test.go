package services

import (
	"testing"
	"time"

	"autoshop-backend/models"
)

func pendingBooking() models.Booking {
	return models.Booking{
		ID:            "a1b2c3d4-0000-0000-0000-000000000000",
		CustomerName:  "James Carter",
		Email:         "james@example.com",
		Phone:         "555-0101",
		Vehicle:       "2019 Toyota Camry",
		ServiceType:   "Oil Change",
		PreferredDate: day(2025, 9, 1),
		PreferredTime: "09:00",
		Status:        models.StatusPending,
	}
}

func TestApplyPaymentFlipsPendingToCompleted(t *testing.T) {
	b := pendingBooking()
	now := time.Date(2025, 7, 15, 16, 45, 12, 0, time.UTC)

	if err := ApplyPayment(&b, "card", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != models.StatusCompleted {
		t.Errorf("status = %q, want %q", b.Status, models.StatusCompleted)
	}
	if b.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("payment status = %q, want %q", b.PaymentStatus, models.PaymentStatusPaid)
	}
	if b.PaymentMethod != "card" {
		t.Errorf("payment method = %q, want card", b.PaymentMethod)
	}
	if b.PaymentDate == nil {
		t.Fatal("payment date not stamped")
	}
	// Stamped as "today", midnight.
	want := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	if !b.PaymentDate.Equal(want) {
		t.Errorf("payment date = %v, want %v", b.PaymentDate, want)
	}
}

func TestApplyPaymentIsOneWay(t *testing.T) {
	now := time.Now()

	completed := pendingBooking()
	completed.Status = models.StatusCompleted
	if err := ApplyPayment(&completed, "card", now); err == nil {
		t.Error("completed booking should reject payment")
	}

	cancelled := pendingBooking()
	cancelled.Status = models.StatusCancelled
	if err := ApplyPayment(&cancelled, "card", now); err == nil {
		t.Error("cancelled booking should reject payment")
	}
}

func TestDecorateDerivesFinanceFields(t *testing.T) {
	b := pendingBooking()
	Decorate(&b)
	if b.Amount != 49.99 {
		t.Errorf("amount = %v, want 49.99", b.Amount)
	}
	if b.InvoiceNumber != "INV-A1B2C3D4" {
		t.Errorf("invoice number = %q, want INV-A1B2C3D4", b.InvoiceNumber)
	}
}

func TestValidateBookingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Booking)
	}{
		{"missing name", func(b *models.Booking) { b.CustomerName = " " }},
		{"missing email", func(b *models.Booking) { b.Email = "" }},
		{"bad email", func(b *models.Booking) { b.Email = "not-an-email" }},
		{"missing phone", func(b *models.Booking) { b.Phone = "" }},
		{"missing vehicle", func(b *models.Booking) { b.Vehicle = "" }},
		{"missing service", func(b *models.Booking) { b.ServiceType = "" }},
		{"missing date", func(b *models.Booking) { b.PreferredDate = time.Time{} }},
		{"missing time", func(b *models.Booking) { b.PreferredTime = "" }},
	}
	for _, tt := range tests {
		b := pendingBooking()
		tt.mutate(&b)
		if err := validateBooking(&b); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}

	ok := pendingBooking()
	if err := validateBooking(&ok); err != nil {
		t.Errorf("valid booking rejected: %v", err)
	}
}
