package workflow

import (
	"fmt"
	"strings"
	"time"

	"mindease/models"
)

// Step identifies a stage of the booking workflow. Steps advance strictly in
// order; Success is terminal for the session.
type Step string

const (
	StepProviderSelection Step = "providerSelection"
	StepDateTimeSelection Step = "dateTimeSelection"
	StepDetails           Step = "details"
	StepConfirmation      Step = "confirmation"
	StepSuccess           Step = "success"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var stepOrder = []Step{
	StepProviderSelection,
	StepDateTimeSelection,
	StepDetails,
	StepConfirmation,
	StepSuccess,
}

func stepIndex(s Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

func nextStep(s Step) (Step, bool) {
	i := stepIndex(s)
	if i < 0 || i+1 >= len(stepOrder) {
		return s, false
	}
	return stepOrder[i+1], true
}

func prevStep(s Step) (Step, bool) {
	i := stepIndex(s)
	if i <= 0 {
		return s, false
	}
	return stepOrder[i-1], true
}

// advanceGate checks the current step's requirements for moving forward.
// Backward navigation is never gated. The Confirmation step advances through
// submission only, so it is rejected here.
func advanceGate(step Step, d models.BookingDraft) error {
	switch step {
	case StepProviderSelection:
		// Informational step; advancing is always allowed. Clients without
		// an assigned therapist get matched by the practice later.
		return nil
	case StepDateTimeSelection:
		if d.PreferredDate == "" || d.PreferredTime == "" {
			return NewValidationError("a preferred date and time must be selected")
		}
		return nil
	case StepDetails:
		if strings.TrimSpace(d.Reason) == "" {
			return NewValidationError("a reason for the appointment is required")
		}
		return nil
	case StepConfirmation:
		return NewStateError("the confirmation step completes through submission")
	case StepSuccess:
		return NewStateError("the booking workflow is already complete")
	}
	return NewStateError(fmt.Sprintf("unknown workflow step %q", step))
}

func validateDate(value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return nil
}

func validateTimeOfDay(value string) error {
	if _, err := time.Parse(timeLayout, value); err != nil {
		return NewValidationError(fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	return nil
}

// dateOnly normalizes a timestamp to its calendar date for lexicographic
// comparison against draft date strings.
func dateOnly(t time.Time) string {
	return t.Format(dateLayout)
}
