package services

import (
	"testing"

	"autoshop-backend/models"
)

func boardEntry(name, vehicle, service string) models.Appointment {
	return models.Appointment{
		CustomerName: name,
		Vehicle:      vehicle,
		Service:      service,
		Date:         "2025-09-10",
		Time:         "10:00",
		Phone:        "555-0199",
	}
}

func TestBoardSeededOnConstruction(t *testing.T) {
	board := NewAppointmentBoard()
	entries := board.List("", false)
	if len(entries) == 0 {
		t.Fatal("board should start seeded")
	}
	for _, e := range entries {
		if !models.IsValidBoardStatus(e.Status) {
			t.Errorf("seed entry %d has invalid status %q", e.ID, e.Status)
		}
	}
}

func TestBoardCreateRequiresFields(t *testing.T) {
	board := NewAppointmentBoard()
	tests := []models.Appointment{
		boardEntry("", "2019 Toyota Camry", "Oil Change"),
		boardEntry("James Carter", "", "Oil Change"),
		boardEntry("James Carter", "2019 Toyota Camry", ""),
	}
	for i, e := range tests {
		if _, err := board.Create(e); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}

	created, err := board.Create(boardEntry("James Carter", "2019 Toyota Camry", "Oil Change"))
	if err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}
	if created.ID == 0 {
		t.Error("created entry should get an id")
	}
	if created.Status != models.BoardStatusScheduled {
		t.Errorf("default status = %q, want %q", created.Status, models.BoardStatusScheduled)
	}
}

func TestBoardUpdateReplacesWholeEntry(t *testing.T) {
	board := NewAppointmentBoard()
	created, err := board.Create(boardEntry("Maria Lopez", "2021 Honda CR-V", "Brake Service"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	replacement := boardEntry("Maria Lopez", "2021 Honda CR-V", "Brake Service")
	replacement.Status = models.BoardStatusInProgress
	replacement.Notes = "front pads"
	updated, err := board.Update(created.ID, replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("update changed id: %d -> %d", created.ID, updated.ID)
	}
	if updated.Status != models.BoardStatusInProgress || updated.Notes != "front pads" {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := board.Update(99999, replacement); err == nil {
		t.Error("expected not-found error for unknown id")
	}

	bad := boardEntry("Maria Lopez", "2021 Honda CR-V", "Brake Service")
	bad.Status = "Paused"
	if _, err := board.Update(created.ID, bad); err == nil {
		t.Error("expected error for status outside the enum")
	}
}

func TestBoardDelete(t *testing.T) {
	board := NewAppointmentBoard()
	created, _ := board.Create(boardEntry("Derek Hall", "2017 Ford F-150", "Engine Diagnostic"))
	before := len(board.List("", false))

	if err := board.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(board.List("", false)); got != before-1 {
		t.Errorf("after delete: %d entries, want %d", got, before-1)
	}
	if err := board.Delete(created.ID); err == nil {
		t.Error("second delete should report not found")
	}
}

func TestFilterByDateExactMatch(t *testing.T) {
	entries := []models.Appointment{
		{ID: 1, Date: "2025-09-01"},
		{ID: 2, Date: "2025-09-02"},
		{ID: 3, Date: "2025-09-01"},
	}
	got := FilterByDate(entries, "2025-09-01")
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got := FilterByDate(entries, "2025-01-01"); len(got) != 0 {
		t.Errorf("no-match date: got %d entries, want 0", len(got))
	}
}

func TestSortByTimeLexicographic(t *testing.T) {
	entries := []models.Appointment{
		{ID: 1, Time: "14:00"},
		{ID: 2, Time: "08:30"},
		{ID: 3, Time: "09:00"},
	}
	sorted := SortByTime(entries)
	want := []string{"08:30", "09:00", "14:00"}
	for i, w := range want {
		if sorted[i].Time != w {
			t.Errorf("position %d = %s, want %s", i, sorted[i].Time, w)
		}
	}
	// input untouched
	if entries[0].Time != "14:00" {
		t.Error("SortByTime should not mutate its input")
	}
}
