package entities

// Slot is a candidate visit window.
type Slot struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"`
}

// AvailabilityInfo is the mock calendar answer for the requested services.
// AvailableSlots is never nil so it always serialises as an array.
type AvailabilityInfo struct {
	AvailableSlots []Slot `json:"available_slots"`
	Note           string `json:"note"`
}
