package usecase

import (
	"strings"
	"time"

	"quotebot/internal/domain/entities"
)

const (
	availabilityNoteSlots   = "These are preliminary availability slots. A representative will confirm exact timing."
	availabilityNoteNoSlots = "No specific service installation/consultation requested, so no availability slots needed."
)

// serviceKeywords mark quote lines that need an on-site visit.
var serviceKeywords = []string{"installation", "service", "tune-up", "repair"}

var slotPlan = []struct {
	offsetDays int
	window     string
}{
	{3, "9:00 AM - 12:00 PM"},
	{5, "1:00 PM - 4:00 PM"},
	{7, "10:00 AM - 1:00 PM"},
}

// NeedsVisit reports whether name contains one of the visit keywords.
// Matching ignores case and treats "_", " " and "-" alike, so
// "System_Tune_Up" matches "tune-up".
func NeedsVisit(name string) bool {
	n := entities.NormalizeName(name)
	for _, kw := range serviceKeywords {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}

// ServiceNamesFromQuote returns the final quote line names that need a visit,
// in quote order.
func ServiceNamesFromQuote(q entities.QuoteDraft) []string {
	names := make([]string, 0, len(q.QuoteItems))
	for _, it := range q.QuoteItems {
		if NeedsVisit(it.Item) {
			names = append(names, it.Item)
		}
	}
	return names
}

// CheckAvailability is the mock calendar. It depends only on its arguments:
// three slots at +3, +5 and +7 days when any name needs a visit, none otherwise.
func CheckAvailability(serviceNames []string, today time.Time) entities.AvailabilityInfo {
	needsVisit := false
	for _, n := range serviceNames {
		if NeedsVisit(n) {
			needsVisit = true
			break
		}
	}
	if !needsVisit {
		return entities.AvailabilityInfo{
			AvailableSlots: []entities.Slot{},
			Note:           availabilityNoteNoSlots,
		}
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	slots := make([]entities.Slot, 0, len(slotPlan))
	for _, p := range slotPlan {
		slots = append(slots, entities.Slot{
			Date: day.AddDate(0, 0, p.offsetDays).Format(time.DateOnly),
			Time: p.window,
		})
	}
	return entities.AvailabilityInfo{AvailableSlots: slots, Note: availabilityNoteSlots}
}
