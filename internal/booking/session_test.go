package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Tier {
	return []Tier{
		{Key: "golden-circle", Label: "Golden Circle", CategoryName: "Golden Circle", Price: 300, AvailableCount: 500},
		{Key: "regular", Label: "Regular", CategoryName: "Regular", Price: 100, AvailableCount: 3000},
	}
}

func testAccount() AccountHolder {
	return AccountHolder{
		ID:          "a0a0a0a0-0000-0000-0000-000000000001",
		Name:        "Omar Hassan",
		Mobile:      "+201012345678",
		Email:       "omar.hassan@gmail.com",
		CountryCode: "EG",
		IsVip:       false,
	}
}

func newTestSession() Session {
	return NewSession("sess-1", testAccount(), "e1e1e1e1-0000-0000-0000-000000000001",
		"Cairo Sound Festival", true, "EG", testCatalog(), true, false)
}

func str(s string) *string { return &s }

func TestChangeQuantityAppendsAndReconciles(t *testing.T) {
	s := newTestSession()

	s = s.ChangeQuantity("golden-circle", 1)
	s = s.ChangeQuantity("regular", 2)

	assert.Equal(t, 3, s.TotalTickets())
	assert.Equal(t, []string{"golden-circle", "regular", "regular"}, s.Sequence)
	require.Len(t, s.Slots, 3)

	for i, slot := range s.Slots {
		assert.Equal(t, i, slot.Index)
		assert.Equal(t, s.Sequence[i], slot.TierKey)
		assert.Equal(t, "EG", slot.MobileCountryCode)
		assert.False(t, slot.IsOwnerTicket)
	}
}

func TestChangeQuantityRemovesEarliestOccurrence(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("golden-circle", 1)
	s = s.ChangeQuantity("regular", 1)
	s = s.ChangeQuantity("golden-circle", 1)
	require.Equal(t, []string{"golden-circle", "regular", "golden-circle"}, s.Sequence)

	// Name the middle slot so we can watch it slide forward
	s, err := s.UpdateSlot(1, SlotUpdate{Name: str("Nour"), Mobile: str("01155554444")})
	require.NoError(t, err)

	s = s.ChangeQuantity("golden-circle", -1)

	// The first golden ticket is released, not the last
	assert.Equal(t, []string{"regular", "golden-circle"}, s.Sequence)
	require.Len(t, s.Slots, 2)

	// Slots are positional: the filled slot stays at index 1 but now
	// carries the tier at that position
	assert.Equal(t, "Nour", s.Slots[1].Name)
	assert.Equal(t, "golden-circle", s.Slots[1].TierKey)

	// With one slot left open, it is auto-assigned to the account holder
	assert.True(t, s.Slots[0].IsOwnerTicket)
	assert.Equal(t, "Omar Hassan", s.Slots[0].Name)
	assert.Equal(t, "regular", s.Slots[0].TierKey)
}

func TestChangeQuantityRetargetsSlotsInPlace(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)

	s, err := s.UpdateSlot(0, SlotUpdate{Name: str("Nour"), Mobile: str("01155554444")})
	require.NoError(t, err)

	s = s.ChangeQuantity("regular", -1)

	// The earliest regular is removed; slot 0 keeps its filled details
	require.Len(t, s.Slots, 1)
	assert.Equal(t, "Nour", s.Slots[0].Name)
	assert.Equal(t, "regular", s.Slots[0].TierKey)
	assert.False(t, s.Slots[0].IsOwnerTicket, "single ticket is never auto-assigned")
}

func TestChangeQuantityClampsAtZero(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)

	// Rapid over-decrement is absorbed
	s = s.ChangeQuantity("regular", -5)

	assert.Equal(t, 0, s.TotalTickets())
	assert.Empty(t, s.Slots)
	_, exists := s.Quantities["regular"]
	assert.False(t, exists, "zeroed tier should drop out of the quantity map")
}

func TestChangeQuantityUnknownTierIsNoOp(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)

	next := s.ChangeQuantity("platinum", 1)

	assert.Equal(t, s.Sequence, next.Sequence)
	assert.Equal(t, s.Quantities, next.Quantities)
}

func TestChangeQuantityDoesNotMutateReceiver(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)

	_ = s.ChangeQuantity("regular", 2)

	assert.Equal(t, 1, s.TotalTickets())
	assert.Len(t, s.Slots, 1)
}

func TestTierQuantityAndHasTier(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("golden-circle", 2)

	assert.Equal(t, 2, s.TierQuantity("golden-circle"))
	assert.Equal(t, 0, s.TierQuantity("regular"))
	assert.True(t, s.HasTier("regular"))
	assert.False(t, s.HasTier("platinum"))
}
