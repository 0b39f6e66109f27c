package services

import (
	"testing"
	"time"

	"autoshop-backend/models"
)

func completedBooking(id, service string, preferred time.Time, paid *time.Time) models.Booking {
	return models.Booking{
		ID:            id,
		Email:         "c@example.com",
		ServiceType:   service,
		PreferredDate: preferred,
		Status:        models.StatusCompleted,
		PaymentDate:   paid,
	}
}

func TestBuildReportEmptySet(t *testing.T) {
	report, err := BuildReport(nil, PeriodMonthly, day(2025, 7, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalRevenue != 0 || report.TotalServices != 0 || report.AverageTicket != 0 {
		t.Errorf("empty set: got revenue=%v count=%d avg=%v, want zeros",
			report.TotalRevenue, report.TotalServices, report.AverageTicket)
	}
	if len(report.Payments) != 0 {
		t.Errorf("empty set: got %d payments", len(report.Payments))
	}
}

func TestBuildReportInvalidPeriod(t *testing.T) {
	if _, err := BuildReport(nil, "quarterly", day(2025, 7, 1)); err == nil {
		t.Fatal("expected error for invalid period")
	}
}

func TestBuildReportFiltersStatusAndWindow(t *testing.T) {
	now := day(2025, 7, 15)
	records := []models.Booking{
		completedBooking("in-window", "Oil Change", day(2025, 7, 10), nil),
		completedBooking("too-old", "Oil Change", day(2025, 6, 1), nil),
		{
			ID: "still-pending", Email: "c@example.com", ServiceType: "Brake Service",
			PreferredDate: day(2025, 7, 12), Status: models.StatusPending,
		},
		{
			ID: "was-cancelled", Email: "c@example.com", ServiceType: "Brake Service",
			PreferredDate: day(2025, 7, 12), Status: models.StatusCancelled,
		},
	}

	report, err := BuildReport(records, PeriodWeekly, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalServices != 1 {
		t.Fatalf("count = %d, want 1", report.TotalServices)
	}
	if report.Payments[0].ID != "in-window" {
		t.Errorf("payment id = %s, want in-window", report.Payments[0].ID)
	}
	if report.TotalRevenue != 49.99 {
		t.Errorf("revenue = %v, want 49.99", report.TotalRevenue)
	}
	if report.AverageTicket != 49.99 {
		t.Errorf("average = %v, want 49.99", report.AverageTicket)
	}
}

func TestBuildReportUsesPaymentDateWhenStamped(t *testing.T) {
	now := day(2025, 7, 15)
	paid := day(2025, 7, 14)
	// Preferred date is outside the window but the stamped payment date is in.
	b := completedBooking("paid-late", "Oil Change", day(2025, 5, 1), &paid)

	report, err := BuildReport([]models.Booking{b}, PeriodWeekly, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalServices != 1 {
		t.Fatalf("count = %d, want 1 (payment date basis)", report.TotalServices)
	}
}

func TestBuildReportPeriodWindows(t *testing.T) {
	now := day(2025, 7, 30)
	records := []models.Booking{
		completedBooking("d5", "Oil Change", day(2025, 7, 25), nil),
		completedBooking("d10", "Oil Change", day(2025, 7, 20), nil),
		completedBooking("d20", "Oil Change", day(2025, 7, 10), nil),
	}

	tests := []struct {
		period string
		want   int
	}{
		{PeriodWeekly, 1},
		{PeriodBiweekly, 2},
		{PeriodMonthly, 3},
	}
	for _, tt := range tests {
		report, err := BuildReport(records, tt.period, now)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.period, err)
		}
		if report.TotalServices != tt.want {
			t.Errorf("%s: count = %d, want %d", tt.period, report.TotalServices, tt.want)
		}
	}
}

func TestBuildReportTotalsAndAverage(t *testing.T) {
	now := day(2025, 7, 15)
	records := []models.Booking{
		completedBooking("a", "Oil Change", day(2025, 7, 10), nil),    // 49.99
		completedBooking("b", "Brake Service", day(2025, 7, 11), nil), // 149.99
	}
	report, err := BuildReport(records, PeriodWeekly, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalRevenue != 199.98 {
		t.Errorf("revenue = %v, want 199.98", report.TotalRevenue)
	}
	if report.AverageTicket != 99.99 {
		t.Errorf("average = %v, want 99.99", report.AverageTicket)
	}
	for _, p := range report.Payments {
		if p.InvoiceNumber == "" || p.Amount == 0 {
			t.Errorf("payment %s missing derived fields: %+v", p.ID, p)
		}
	}
}
