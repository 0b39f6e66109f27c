package services

import (
	"context"
	"fmt"
	"time"

	"autoshop-backend/models"

	"gorm.io/gorm"
)

// Report periods map to a lookback window ending at now.
const (
	PeriodWeekly   = "weekly"
	PeriodBiweekly = "biweekly"
	PeriodMonthly  = "monthly"
)

type FinanceReport struct {
	Period        string           `json:"period"`
	From          time.Time        `json:"from"`
	To            time.Time        `json:"to"`
	Payments      []models.Booking `json:"payments"`
	TotalRevenue  float64          `json:"total_revenue"`
	TotalServices int              `json:"total_services"`
	AverageTicket float64          `json:"average_ticket"`
}

func periodDays(period string) (int, error) {
	switch period {
	case PeriodWeekly:
		return 7, nil
	case PeriodBiweekly:
		return 14, nil
	case PeriodMonthly:
		return 30, nil
	}
	return 0, fmt.Errorf("validation: invalid period %q", period)
}

// reportDate is the date a completed record counts under: the stamped
// payment date when present, else the preferred service date.
func reportDate(b *models.Booking) time.Time {
	if b.PaymentDate != nil {
		return *b.PaymentDate
	}
	return b.PreferredDate
}

// BuildReport reduces the full booking set to the revenue view for one
// period: completed records whose date falls inside [now-window, now],
// total revenue, count, and average ticket (0 for an empty window).
func BuildReport(records []models.Booking, period string, now time.Time) (FinanceReport, error) {
	days, err := periodDays(period)
	if err != nil {
		return FinanceReport{}, err
	}
	from := now.AddDate(0, 0, -days)

	report := FinanceReport{
		Period:   period,
		From:     from,
		To:       now,
		Payments: []models.Booking{},
	}

	for i := range records {
		b := records[i]
		if b.Status != models.StatusCompleted {
			continue
		}
		d := reportDate(&b)
		if d.Before(from) || d.After(now) {
			continue
		}
		Decorate(&b)
		report.Payments = append(report.Payments, b)
		report.TotalRevenue += b.Amount
		report.TotalServices++
	}

	report.TotalRevenue = round2(report.TotalRevenue)
	if report.TotalServices > 0 {
		report.AverageTicket = round2(report.TotalRevenue / float64(report.TotalServices))
	}
	return report, nil
}

// FinanceService recomputes the report from the full record set on every
// request; nothing is persisted.
type FinanceService struct {
	DB *gorm.DB
}

func NewFinanceService(db *gorm.DB) *FinanceService {
	return &FinanceService{DB: db}
}

func (s *FinanceService) Report(ctx context.Context, period string) (FinanceReport, error) {
	var records []models.Booking
	if err := s.DB.WithContext(ctx).
		Order("preferred_date DESC").
		Find(&records).Error; err != nil {
		return FinanceReport{}, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return BuildReport(records, period, time.Now())
}
