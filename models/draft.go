package models

// TherapyCategory classifies the kind of session a client is requesting.
type TherapyCategory string

const (
	CategoryIndividual TherapyCategory = "individual"
	CategoryCouple     TherapyCategory = "couple"
	CategoryFamily     TherapyCategory = "family"
	CategoryGroup      TherapyCategory = "group"
)

func (c TherapyCategory) Valid() bool {
	switch c {
	case CategoryIndividual, CategoryCouple, CategoryFamily, CategoryGroup:
		return true
	}
	return false
}

// Urgency expresses how soon the client needs to be seen.
type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyEmergency:
		return true
	}
	return false
}

// BookingDraft accumulates the appointment request across workflow steps.
// It has exactly one writer (the workflow service); handlers only ever see
// snapshots of it. Dates are "2006-01-02" strings, times "15:04".
type BookingDraft struct {
	ProviderID   string `json:"providerId,omitempty"`
	ProviderName string `json:"providerName,omitempty"`

	PreferredDate string `json:"preferredDate,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`

	AlternativeDate string `json:"alternativeDate,omitempty"`
	AlternativeTime string `json:"alternativeTime,omitempty"`

	TherapyCategory TherapyCategory `json:"therapyCategory"`
	Urgency         Urgency         `json:"urgency"`

	Reason          string `json:"reason,omitempty"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`
}

// NewBookingDraft returns a draft with the default category and urgency.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		TherapyCategory: CategoryIndividual,
		Urgency:         UrgencyNormal,
	}
}
