package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"autoshop-backend/models"
)

// AppointmentBoard is the admin appointment-management screen's own store:
// a seeded in-memory list, independent of the bookings table. A restart
// resets it to the seed data.
type AppointmentBoard struct {
	mu      sync.Mutex
	nextID  int
	entries []models.Appointment
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: 1, CustomerName: "James Carter", Vehicle: "2019 Toyota Camry", Service: "Oil Change", Date: "2025-09-01", Time: "09:00", Status: models.BoardStatusScheduled, Phone: "555-0101", Duration: "45 min", Notes: "Customer waiting on site", Images: []string{}},
		{ID: 2, CustomerName: "Maria Lopez", Vehicle: "2021 Honda CR-V", Service: "Brake Service", Date: "2025-09-01", Time: "10:30", Status: models.BoardStatusInProgress, Phone: "555-0102", Duration: "2 hours", Notes: "Front pads only", Images: []string{}},
		{ID: 3, CustomerName: "Derek Hall", Vehicle: "2017 Ford F-150", Service: "Engine Diagnostic", Date: "2025-09-02", Time: "08:30", Status: models.BoardStatusScheduled, Phone: "555-0103", Duration: "1 hour", Notes: "Check engine light intermittent", Images: []string{}},
		{ID: 4, CustomerName: "Priya Nair", Vehicle: "2022 Tesla Model 3", Service: "Tire Rotation", Date: "2025-09-02", Time: "14:00", Status: models.BoardStatusCompleted, Phone: "555-0104", Duration: "30 min", Notes: "", Images: []string{}},
		{ID: 5, CustomerName: "Tom Becker", Vehicle: "2015 Subaru Outback", Service: "AC Service", Date: "2025-09-03", Time: "11:00", Status: models.BoardStatusCancelled, Phone: "555-0105", Duration: "1.5 hours", Notes: "Customer rescheduling", Images: []string{}},
	}
}

func NewAppointmentBoard() *AppointmentBoard {
	entries := seedAppointments()
	nextID := 1
	for _, e := range entries {
		if e.ID >= nextID {
			nextID = e.ID + 1
		}
	}
	return &AppointmentBoard{nextID: nextID, entries: entries}
}

// FilterByDate keeps entries whose date matches exactly (YYYY-MM-DD).
func FilterByDate(entries []models.Appointment, date string) []models.Appointment {
	out := make([]models.Appointment, 0, len(entries))
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// SortByTime orders entries by their HH:MM field. A plain string compare is
// enough because all times are zero-padded.
func SortByTime(entries []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// List returns a copy of the board, optionally filtered to one date and
// optionally sorted by time.
func (b *AppointmentBoard) List(date string, sortByTime bool) []models.Appointment {
	b.mu.Lock()
	entries := make([]models.Appointment, len(b.entries))
	copy(entries, b.entries)
	b.mu.Unlock()

	if date != "" {
		entries = FilterByDate(entries, date)
	}
	if sortByTime {
		entries = SortByTime(entries)
	}
	return entries
}

func validateEntry(e *models.Appointment) error {
	switch {
	case e.CustomerName == "":
		return fmt.Errorf("validation: customer_name is required")
	case e.Vehicle == "":
		return fmt.Errorf("validation: vehicle is required")
	case e.Service == "":
		return fmt.Errorf("validation: service is required")
	}
	if e.Status != "" && !models.IsValidBoardStatus(e.Status) {
		return fmt.Errorf("validation: invalid status %q", e.Status)
	}
	return nil
}

func (b *AppointmentBoard) Create(e models.Appointment) (models.Appointment, error) {
	if err := validateEntry(&e); err != nil {
		return models.Appointment{}, err
	}
	if e.Status == "" {
		e.Status = models.BoardStatusScheduled
	}
	if e.Images == nil {
		e.Images = []string{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	e.ID = b.nextID
	b.nextID++
	b.entries = append(b.entries, e)
	return e, nil
}

// Update replaces the whole entry for an id; only the id is preserved.
func (b *AppointmentBoard) Update(id int, e models.Appointment) (models.Appointment, error) {
	if err := validateEntry(&e); err != nil {
		return models.Appointment{}, err
	}
	if e.Images == nil {
		e.Images = []string{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		if b.entries[i].ID == id {
			e.ID = id
			b.entries[i] = e
			return e, nil
		}
	}
	return models.Appointment{}, errors.New("appointment_not_found")
}

func (b *AppointmentBoard) Delete(id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("appointment_not_found")
}
