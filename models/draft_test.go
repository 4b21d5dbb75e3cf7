package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingDraftDefaults(t *testing.T) {
	draft := NewBookingDraft()

	assert.Equal(t, CategoryIndividual, draft.TherapyCategory)
	assert.Equal(t, UrgencyNormal, draft.Urgency)
	assert.Empty(t, draft.PreferredDate)
	assert.Empty(t, draft.Reason)
}

func TestTherapyCategoryValid(t *testing.T) {
	for _, c := range []TherapyCategory{CategoryIndividual, CategoryCouple, CategoryFamily, CategoryGroup} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, TherapyCategory("hypno").Valid())
	assert.False(t, TherapyCategory("").Valid())
}

func TestUrgencyValid(t *testing.T) {
	for _, u := range []Urgency{UrgencyNormal, UrgencyUrgent, UrgencyEmergency} {
		assert.True(t, u.Valid(), string(u))
	}
	assert.False(t, Urgency("whenever").Valid())
}

func TestProviderDisplayName(t *testing.T) {
	p := ProviderAssignment{FirstName: "Dana", LastName: "Whitfield"}
	assert.Equal(t, "Dana Whitfield", p.DisplayName())

	onlyLast := ProviderAssignment{LastName: "Whitfield"}
	assert.Equal(t, "Whitfield", onlyLast.DisplayName())
}
