package services

import (
	"testing"
	"time"

	"autoshop-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(email, name, phone string, preferred, created time.Time) models.Booking {
	return models.Booking{
		ID:            email + preferred.Format("20060102"),
		Email:         email,
		CustomerName:  name,
		Phone:         phone,
		ServiceType:   "Oil Change",
		PreferredDate: preferred,
		CreatedAt:     created,
		Status:        models.StatusPending,
	}
}

func TestLoyaltyTierBoundaries(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, TierNew},
		{2, TierReturning},
		{3, TierReturning},
		{4, TierReturning},
		{5, TierRegular},
		{9, TierRegular},
		{10, TierVIP},
		{25, TierVIP},
	}
	for _, tt := range tests {
		if got := LoyaltyTier(tt.count); got != tt.want {
			t.Errorf("LoyaltyTier(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestAggregateCustomersCountsAndDates(t *testing.T) {
	records := []models.Booking{
		record("a@example.com", "Alice", "555-0001", day(2025, 3, 10), day(2025, 3, 1)),
		record("A@Example.com", "Alice B", "555-0002", day(2025, 6, 20), day(2025, 6, 1)),
		record("a@example.com", "Alice", "555-0001", day(2025, 1, 5), day(2025, 1, 1)),
		record("b@example.com", "Bob", "555-0100", day(2025, 5, 5), day(2025, 5, 1)),
	}

	agg := AggregateCustomers(records)
	if len(agg) != 2 {
		t.Fatalf("got %d aggregates, want 2", len(agg))
	}

	for _, a := range agg {
		if a.FirstService.After(a.LastService) {
			t.Errorf("%s: first %v after last %v", a.Email, a.FirstService, a.LastService)
		}
	}

	// Sorted by last service date descending: alice (2025-06-20) first.
	if agg[0].Email != "a@example.com" {
		t.Fatalf("first aggregate = %s, want a@example.com", agg[0].Email)
	}
	alice := agg[0]
	if alice.TotalServices != 3 {
		t.Errorf("alice count = %d, want 3", alice.TotalServices)
	}
	if !alice.FirstService.Equal(day(2025, 1, 5)) || !alice.LastService.Equal(day(2025, 6, 20)) {
		t.Errorf("alice dates = %v..%v", alice.FirstService, alice.LastService)
	}
	// Display name/phone come from the most recently created record.
	if alice.Name != "Alice B" || alice.Phone != "555-0002" {
		t.Errorf("alice identity = %q/%q, want latest record's", alice.Name, alice.Phone)
	}
	if alice.Tier != TierReturning {
		t.Errorf("alice tier = %q, want %q", alice.Tier, TierReturning)
	}

	bob := agg[1]
	if bob.TotalServices != 1 || bob.Tier != TierNew {
		t.Errorf("bob = %d/%q, want 1/%q", bob.TotalServices, bob.Tier, TierNew)
	}
}

func TestAggregateCustomersSkipsBlankEmail(t *testing.T) {
	records := []models.Booking{
		record("", "Ghost", "555-0000", day(2025, 2, 2), day(2025, 2, 1)),
		record("c@example.com", "Cara", "555-0200", day(2025, 2, 3), day(2025, 2, 1)),
	}
	agg := AggregateCustomers(records)
	if len(agg) != 1 || agg[0].Email != "c@example.com" {
		t.Fatalf("got %+v, want only c@example.com", agg)
	}
}

func TestFilterAggregatesSearch(t *testing.T) {
	now := day(2025, 7, 1)
	list := AggregateCustomers([]models.Booking{
		record("alice@example.com", "Alice Smith", "555-0001", day(2025, 3, 10), day(2025, 3, 1)),
		record("bob@shop.net", "Bob Jones", "555-0100", day(2025, 5, 5), day(2025, 5, 1)),
	})

	got := FilterAggregates(list, "ALICE", CohortAll, now)
	if len(got) != 1 || got[0].Email != "alice@example.com" {
		t.Fatalf("search by name substring: got %+v", got)
	}

	got = FilterAggregates(list, "shop.net", CohortAll, now)
	if len(got) != 1 || got[0].Email != "bob@shop.net" {
		t.Fatalf("search by email substring: got %+v", got)
	}

	got = FilterAggregates(list, "0100", CohortAll, now)
	if len(got) != 1 || got[0].Email != "bob@shop.net" {
		t.Fatalf("search by phone substring: got %+v", got)
	}

	got = FilterAggregates(list, "zz-no-match-zz", CohortAll, now)
	if len(got) != 0 {
		t.Fatalf("no-match search: got %+v, want empty", got)
	}
}

func TestFilterAggregatesCohorts(t *testing.T) {
	now := day(2025, 7, 1)
	records := []models.Booking{
		// frequent: 3 visits
		record("f@example.com", "Frank", "555-0300", day(2025, 1, 1), day(2025, 1, 1)),
		record("f@example.com", "Frank", "555-0300", day(2025, 2, 1), day(2025, 2, 1)),
		record("f@example.com", "Frank", "555-0300", day(2025, 3, 1), day(2025, 3, 1)),
		// new: first service 10 days before now
		record("n@example.com", "Nina", "555-0400", day(2025, 6, 21), day(2025, 6, 21)),
		// neither: single old visit
		record("o@example.com", "Omar", "555-0500", day(2024, 12, 1), day(2024, 12, 1)),
	}
	list := AggregateCustomers(records)

	frequent := FilterAggregates(list, "", CohortFrequent, now)
	if len(frequent) != 1 || frequent[0].Email != "f@example.com" {
		t.Fatalf("frequent cohort: got %+v", frequent)
	}

	newcomers := FilterAggregates(list, "", CohortNew, now)
	if len(newcomers) != 1 || newcomers[0].Email != "n@example.com" {
		t.Fatalf("new cohort: got %+v", newcomers)
	}

	all := FilterAggregates(list, "", CohortAll, now)
	if len(all) != 3 {
		t.Fatalf("all cohort: got %d, want 3", len(all))
	}
}

func TestContentHashStableAndSensitive(t *testing.T) {
	a := []models.Booking{record("a@example.com", "Alice", "555-0001", day(2025, 3, 10), day(2025, 3, 1))}
	b := []models.Booking{record("a@example.com", "Alice", "555-0001", day(2025, 3, 10), day(2025, 3, 1))}
	if contentHash(a) != contentHash(b) {
		t.Error("identical sets should hash equal")
	}
	b[0].Phone = "555-9999"
	if contentHash(a) == contentHash(b) {
		t.Error("changed set should hash differently")
	}
}
