package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignOwnerFirstAssignment(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("golden-circle", 1)
	s = s.ChangeQuantity("regular", 1)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	assert.Equal(t, 1, s.OwnerCount())
	owner := s.Slots[0]
	assert.True(t, owner.IsOwnerTicket)
	assert.Equal(t, "Omar Hassan", owner.Name)
	assert.Equal(t, "+201012345678", owner.Mobile)
	assert.Equal(t, "omar.hassan@gmail.com", owner.Email)
	assert.Equal(t, "EG", owner.MobileCountryCode)
}

func TestAssignOwnerTransfersAcrossTiers(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("golden-circle", 1)
	s = s.ChangeQuantity("regular", 1)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	s, err = s.AssignOwner(1)
	require.NoError(t, err)

	assert.Equal(t, 1, s.OwnerCount())
	assert.True(t, s.Slots[1].IsOwnerTicket)

	// The previous owner slot is cleared back to an empty guest slot
	prev := s.Slots[0]
	assert.False(t, prev.IsOwnerTicket)
	assert.Empty(t, prev.Name)
	assert.Empty(t, prev.Mobile)
	assert.Empty(t, prev.Email)
	assert.Equal(t, "EG", prev.MobileCountryCode)
}

func TestAssignOwnerRejectsSameTierSwap(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	_, err = s.AssignOwner(1)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeSameTierSwap, ve.Code)
	assert.Equal(t, 1, s.OwnerCount())
	assert.True(t, s.Slots[0].IsOwnerTicket, "failed swap must not move ownership")
}

func TestAssignOwnerTargetAlreadyOwner(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	_, err = s.AssignOwner(0)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeOwnerLocked, ve.Code)
}

func TestAssignOwnerOutOfRange(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)

	_, err := s.AssignOwner(5)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeSlotOutOfRange, ve.Code)

	_, err = s.AssignOwner(-1)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeSlotOutOfRange, ve.Code)
}

func TestAutoPromotionFillsLastOpenSlot(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)
	s = s.ChangeQuantity("golden-circle", 1)

	s, err := s.UpdateSlot(0, SlotUpdate{Name: str("Nour"), Mobile: str("01155554444")})
	require.NoError(t, err)
	assert.Equal(t, 0, s.OwnerCount(), "two open slots, nothing to infer")

	s, err = s.UpdateSlot(1, SlotUpdate{Name: str("Laila"), Mobile: str("01022223333")})
	require.NoError(t, err)

	// Slots 0 and 1 are guests, slot 2 is the only one left: it becomes
	// the account holder's ticket with their details filled in
	require.Equal(t, 1, s.OwnerCount())
	owner := s.Slots[2]
	assert.True(t, owner.IsOwnerTicket)
	assert.Equal(t, "Omar Hassan", owner.Name)
	assert.Equal(t, "+201012345678", owner.Mobile)
}

func TestAutoPromotionSkipsSingleTicket(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)

	assert.Equal(t, 0, s.OwnerCount(), "a lone ticket must be claimed explicitly")
}

func TestAutoPromotionSkipsWhenOwnerExists(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)
	s = s.ChangeQuantity("golden-circle", 1)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	// Filling the remaining guest slot must not mint a second owner
	s, err = s.UpdateSlot(1, SlotUpdate{Name: str("Nour"), Mobile: str("01155554444")})
	require.NoError(t, err)

	assert.Equal(t, 1, s.OwnerCount())
}

func TestUpdateSlotRejectsAccountMobileOnGuest(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)

	// Same number as the account holder, different formatting
	_, err := s.UpdateSlot(0, SlotUpdate{Mobile: str("01012345678")})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeMobileConflict, ve.Code)

	// Prior state untouched
	assert.Empty(t, s.Slots[0].Mobile)
}

func TestUpdateSlotRedetectsCountryOnMobileEdit(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)

	s, err := s.UpdateSlot(0, SlotUpdate{Mobile: str("+971501234567")})
	require.NoError(t, err)
	assert.Equal(t, "AE", s.Slots[0].MobileCountryCode)

	// An explicit country in the same update wins over detection
	s, err = s.UpdateSlot(0, SlotUpdate{Mobile: str("+971501234567"), MobileCountryCode: str("SA")})
	require.NoError(t, err)
	assert.Equal(t, "SA", s.Slots[0].MobileCountryCode)
}

func TestUpdateSlotOutOfRange(t *testing.T) {
	s := newTestSession()

	_, err := s.UpdateSlot(0, SlotUpdate{Name: str("Nour")})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeSlotOutOfRange, ve.Code)
}

func TestUpdateSlotAllowsOwnerMobileOnOwnerSlot(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)
	s = s.ChangeQuantity("golden-circle", 1)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	// Re-entering their own number on their own slot is fine
	_, err = s.UpdateSlot(0, SlotUpdate{Mobile: str("01012345678")})
	assert.NoError(t, err)
}
