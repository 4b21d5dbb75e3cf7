package workflow

import (
	"strings"

	"mindease/models"
)

// buildAppointmentRequest flattens the draft into the submission payload.
// Missing preferred date/time here means a transition bypassed the
// date & time gate — a programming error, not user input to report back.
func buildAppointmentRequest(session *WorkflowSession) (models.AppointmentRequest, error) {
	d := session.Draft
	if d.PreferredDate == "" || d.PreferredTime == "" {
		return models.AppointmentRequest{}, NewStateError("draft is missing preferred date or time at submission")
	}
	return models.AppointmentRequest{
		ClientID:        session.ClientID,
		ProviderID:      d.ProviderID,
		PreferredDate:   d.PreferredDate,
		PreferredTime:   d.PreferredTime,
		AlternativeDate: d.AlternativeDate,
		AlternativeTime: d.AlternativeTime,
		TherapyCategory: d.TherapyCategory,
		Urgency:         d.Urgency,
		Reason:          strings.TrimSpace(d.Reason),
		AdditionalNotes: d.AdditionalNotes,
	}, nil
}
