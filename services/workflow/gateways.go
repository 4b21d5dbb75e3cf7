package workflow

import (
	"context"

	"mindease/models"
)

// Collaborator contracts owned by the practice-management backend. The
// workflow consumes them at this boundary only; how the backend computes
// availability or stores appointment requests is not its concern.

// ProviderGateway resolves a client's assigned therapist. A nil assignment
// with a nil error means the client simply has none yet — a valid outcome,
// not a failure.
type ProviderGateway interface {
	GetAssignedProvider(ctx context.Context, clientID string) (*models.ProviderAssignment, error)
}

// AvailabilityGateway yields the bookable slots of a provider on a date,
// with availability flags already computed upstream.
type AvailabilityGateway interface {
	GetAvailableSlots(ctx context.Context, providerID, date string) ([]models.TimeSlot, error)
}

// SubmissionGateway persists the finished appointment request.
type SubmissionGateway interface {
	SubmitAppointmentRequest(ctx context.Context, req models.AppointmentRequest) error
}
