package models

// TimeSlot is a bookable time-of-day for a given date. Availability is
// computed upstream by the scheduling backend; when no provider is assigned
// yet the workflow offers a generic catalogue where every entry is selectable
// as a preference only. Slot lists are produced fresh on every date change
// and never mutated in place.
type TimeSlot struct {
	Time      string `json:"time"` // "15:04"
	Available bool   `json:"available"`
}
