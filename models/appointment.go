package models

// Board statuses form a closed enum, separate from Booking statuses.
// The board is an independent in-memory subsystem and the two are never
// reconciled.
const (
	BoardStatusScheduled  = "Scheduled"
	BoardStatusInProgress = "In Progress"
	BoardStatusCompleted  = "Completed"
	BoardStatusCancelled  = "Cancelled"
)

// Appointment is one entry on the admin appointment board. It is not backed
// by the bookings table; the board holds its own seeded in-memory list and a
// restart resets it.
type Appointment struct {
	ID           int      `json:"id"`
	CustomerName string   `json:"customer_name"`
	Vehicle      string   `json:"vehicle"`
	Service      string   `json:"service"`
	Date         string   `json:"date"` // YYYY-MM-DD
	Time         string   `json:"time"` // HH:MM, zero-padded
	Status       string   `json:"status"`
	Phone        string   `json:"phone"`
	Duration     string   `json:"duration"`
	Notes        string   `json:"notes"`
	Images       []string `json:"images"`
}

func IsValidBoardStatus(s string) bool {
	switch s {
	case BoardStatusScheduled, BoardStatusInProgress, BoardStatusCompleted, BoardStatusCancelled:
		return true
	}
	return false
}
