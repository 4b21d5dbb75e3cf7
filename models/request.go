package models

// AppointmentRequest is the flattened payload submitted to the scheduling
// backend when the client confirms. Optional fields are omitted when unset;
// preferred date/time are guaranteed present by the workflow gates.
type AppointmentRequest struct {
	ClientID   string `json:"clientId"`
	ProviderID string `json:"providerId,omitempty"`

	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`

	AlternativeDate string `json:"alternativeDate,omitempty"`
	AlternativeTime string `json:"alternativeTime,omitempty"`

	TherapyCategory TherapyCategory `json:"therapyCategory"`
	Urgency         Urgency         `json:"urgency"`

	Reason          string `json:"reason"`
	AdditionalNotes string `json:"additionalNotes,omitempty"`
}
