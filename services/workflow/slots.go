package workflow

import (
	"context"

	"go.uber.org/zap"

	"mindease/models"
	"mindease/utils"
)

// fallbackTimes are the common appointment times offered while no provider is
// assigned. Selecting one of these is a preference the practice tries to
// honor, not a guaranteed booking.
var fallbackTimes = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}

// SlotResolver resolves the time slots to offer for a date. Implementations
// must degrade to an empty list on collaborator failure rather than surface
// an error; the workflow shows "no slots" instead of dead-ending the client.
type SlotResolver interface {
	Resolve(ctx context.Context, providerID, date string) []models.TimeSlot
}

// DefaultSlotResolver delegates to the availability gateway when a provider
// is known and serves the static fallback catalogue otherwise.
type DefaultSlotResolver struct {
	Availability AvailabilityGateway
}

func (r *DefaultSlotResolver) Resolve(ctx context.Context, providerID, date string) []models.TimeSlot {
	if providerID == "" {
		return FallbackSlots()
	}

	slots, err := r.Availability.GetAvailableSlots(ctx, providerID, date)
	if err != nil {
		utils.GetLogger().Warn("slot fetch failed, degrading to empty list",
			zap.String("providerID", providerID),
			zap.String("date", date),
			zap.Error(err))
		return nil
	}
	return slots
}

// FallbackSlots returns a fresh copy of the fallback catalogue; slot lists
// are never shared or mutated in place.
func FallbackSlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, len(fallbackTimes))
	for _, t := range fallbackTimes {
		slots = append(slots, models.TimeSlot{Time: t, Available: true})
	}
	return slots
}
