package usecase

import (
	"testing"
	"time"

	"quotebot/internal/domain/entities"
)

func TestNeedsVisit(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"New_System_Installation", true},
		{"System_Tune_Up", true},
		{"system tune-up", true},
		{"Service_Call_Diagnostic", true},
		{"Hose Repair", true},
		{"PP650", false},
		{"50ft_Retractable_Hose", false},
		{"Shipping_Standard", false},
	}
	for _, tc := range cases {
		if got := NeedsVisit(tc.name); got != tc.want {
			t.Fatalf("NeedsVisit(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestServiceNamesFromQuote(t *testing.T) {
	q := entities.QuoteDraft{QuoteItems: []entities.QuoteItem{
		{Item: "PP650"},
		{Item: "New_System_Installation"},
		{Item: "Clog_Removal"},
		{Item: "System_Tune_Up"},
	}}
	got := ServiceNamesFromQuote(q)
	if len(got) != 2 || got[0] != "New_System_Installation" || got[1] != "System_Tune_Up" {
		t.Fatalf("unexpected service names: %v", got)
	}
}

func TestCheckAvailability(t *testing.T) {
	today := time.Date(2025, 12, 28, 18, 45, 0, 0, time.UTC)

	t.Run("service requested", func(t *testing.T) {
		info := CheckAvailability([]string{"New_System_Installation"}, today)
		want := []entities.Slot{
			{Date: "2025-12-31", Time: "9:00 AM - 12:00 PM"},
			{Date: "2026-01-02", Time: "1:00 PM - 4:00 PM"},
			{Date: "2026-01-04", Time: "10:00 AM - 1:00 PM"},
		}
		if len(info.AvailableSlots) != len(want) {
			t.Fatalf("expected %d slots, got %+v", len(want), info.AvailableSlots)
		}
		for i := range want {
			if info.AvailableSlots[i] != want[i] {
				t.Fatalf("slot %d = %+v, want %+v", i, info.AvailableSlots[i], want[i])
			}
		}
		if info.Note != availabilityNoteSlots {
			t.Fatalf("unexpected note: %q", info.Note)
		}
	})

	t.Run("no service", func(t *testing.T) {
		for _, names := range [][]string{nil, {}, {"PP650", "Clog_Removal"}} {
			info := CheckAvailability(names, today)
			if info.AvailableSlots == nil || len(info.AvailableSlots) != 0 {
				t.Fatalf("expected empty non-nil slots for %v, got %#v", names, info.AvailableSlots)
			}
			if info.Note != availabilityNoteNoSlots {
				t.Fatalf("unexpected note: %q", info.Note)
			}
		}
	})

	t.Run("sample checks", func(t *testing.T) {
		newYear := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		if got := CheckAvailability([]string{"New_System_Installation"}, newYear); len(got.AvailableSlots) != 3 {
			t.Fatalf("expected 3 slots, got %+v", got.AvailableSlots)
		}
		for _, s := range CheckAvailability([]string{"New_System_Installation"}, newYear).AvailableSlots {
			if s.Date == "" || s.Time == "" {
				t.Fatalf("slots must not be empty: %+v", s)
			}
		}
		if got := CheckAvailability([]string{"Carpet_Comb"}, newYear); len(got.AvailableSlots) != 0 {
			t.Fatalf("expected no slots, got %+v", got.AvailableSlots)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := CheckAvailability([]string{"System_Tune_Up"}, today)
		b := CheckAvailability([]string{"System_Tune_Up"}, today.Add(3*time.Hour))
		for i := range a.AvailableSlots {
			if a.AvailableSlots[i] != b.AvailableSlots[i] {
				t.Fatalf("same day must give the same slots: %v vs %v", a, b)
			}
		}
	})
}
