package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestSession builds a submittable two-ticket session: the owner
// holds the golden ticket, Nour holds the regular one.
func validTestSession(t *testing.T) Session {
	t.Helper()

	s := newTestSession()
	s = s.ChangeQuantity("golden-circle", 1)
	s = s.ChangeQuantity("regular", 1)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	s, err = s.UpdateSlot(1, SlotUpdate{Name: str("Nour El-Sayed"), Mobile: str("01155554444")})
	require.NoError(t, err)

	return s
}

func assertValidationCode(t *testing.T, err error, code string) {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, code, ve.Code)
}

func TestValidateEmptySelection(t *testing.T) {
	s := newTestSession()
	assertValidationCode(t, s.Validate(), CodeNoTickets)
}

func TestValidateNoOwner(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)

	assertValidationCode(t, s.Validate(), CodeNoOwner)
}

func TestValidateMultipleOwners(t *testing.T) {
	s := validTestSession(t)
	s.Slots[1].IsOwnerTicket = true // corrupted snapshot

	assertValidationCode(t, s.Validate(), CodeMultipleOwners)
}

func TestValidateGuestWithAccountMobile(t *testing.T) {
	s := validTestSession(t)
	s.Slots[1].Mobile = "01012345678" // account holder's own number

	assertValidationCode(t, s.Validate(), CodeMobileConflict)
}

func TestValidateRejectsDuplicateGuestMobiles(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("golden-circle", 1)
	s = s.ChangeQuantity("regular", 2)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)
	s, err = s.UpdateSlot(1, SlotUpdate{Name: str("Nour El-Sayed"), Mobile: str("01098765432")})
	require.NoError(t, err)
	// Same number as slot 1, international formatting
	s, err = s.UpdateSlot(2, SlotUpdate{Name: str("Karim Adel"), Mobile: str("+20 1098765432")})
	require.NoError(t, err)

	assertValidationCode(t, s.Validate(), CodeDuplicateMobile)

	_, err = s.BuildSubmission(testRules())
	assertValidationCode(t, err, CodeDuplicateMobile)

	s, err = s.UpdateSlot(2, SlotUpdate{Mobile: str("01198765432")})
	require.NoError(t, err)
	assert.NoError(t, s.Validate())
}

func TestValidateEmptyGuestMobilesNeverCollide(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 3)
	s, err := s.AssignOwner(0)
	require.NoError(t, err)

	// Two untouched guest slots share "" but that is not a duplicate
	assertValidationCode(t, s.Validate(), CodeMissingName)
}

func TestValidateGuestMissingName(t *testing.T) {
	s := validTestSession(t)
	s.Slots[1].Name = ""

	assertValidationCode(t, s.Validate(), CodeMissingName)
}

func TestValidateGuestInvalidMobile(t *testing.T) {
	s := validTestSession(t)
	s.Slots[1].Mobile = "12345"

	assertValidationCode(t, s.Validate(), CodeInvalidMobile)
}

func TestValidateInternationalGuestNeedsEmail(t *testing.T) {
	s := validTestSession(t)
	s, err := s.UpdateSlot(1, SlotUpdate{Mobile: str("+971501234567")})
	require.NoError(t, err)

	assertValidationCode(t, s.Validate(), CodeMissingEmail)

	s, err = s.UpdateSlot(1, SlotUpdate{Email: str("laila.mansour@gmail.com")})
	require.NoError(t, err)
	assert.NoError(t, s.Validate())
}

func TestValidateOwnerNeedsNoEmail(t *testing.T) {
	s := validTestSession(t)
	s.Slots[0].Email = ""

	// The owner inherits the account email downstream
	assert.NoError(t, s.Validate())
}

func TestValidateChecksRunInOrder(t *testing.T) {
	// A session violating several rules reports the most fundamental one
	s := newTestSession()
	s = s.ChangeQuantity("regular", 2)
	s.Slots[0].Mobile = "+201012345678" // conflict, but no owner yet

	assertValidationCode(t, s.Validate(), CodeNoOwner)
}

func TestBuildSubmissionAssemblesPayload(t *testing.T) {
	s := validTestSession(t)

	payload, err := s.BuildSubmission(testRules())
	require.NoError(t, err)

	assert.Equal(t, 2, payload.Quantity)
	require.Len(t, payload.TicketDetails, 2)

	ownerDetail := payload.TicketDetails[0]
	assert.True(t, ownerDetail.IsOwner)
	assert.Equal(t, "Omar Hassan", ownerDetail.Name)
	assert.Equal(t, "Golden Circle", ownerDetail.Category)
	assert.Equal(t, 300.0, ownerDetail.Price)

	guestDetail := payload.TicketDetails[1]
	assert.False(t, guestDetail.IsOwner)
	assert.Equal(t, "Nour El-Sayed", guestDetail.Name)
	assert.Equal(t, "Regular", guestDetail.Category)
	assert.Equal(t, 100.0, guestDetail.Price)

	assert.Equal(t, s.Quote(testRules()).Total, payload.Amount)
}

func TestBuildSubmissionCategoryAnchorsOnCatalogOrder(t *testing.T) {
	// Selection order is regular first, but the category reported to the
	// gateway is the first selected tier in catalog order
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)
	s = s.ChangeQuantity("golden-circle", 1)

	s, err := s.AssignOwner(0)
	require.NoError(t, err)
	s, err = s.UpdateSlot(1, SlotUpdate{Name: str("Nour"), Mobile: str("01155554444")})
	require.NoError(t, err)

	payload, err := s.BuildSubmission(testRules())
	require.NoError(t, err)

	assert.Equal(t, "Golden Circle", payload.Category)
}

func TestBuildSubmissionPadsMissingSlots(t *testing.T) {
	s := validTestSession(t)
	s.Slots = s.Slots[:1] // stale snapshot lost a slot

	// Validation sees one owner and no incomplete guests, and the payload
	// still carries one line per sequence position
	payload, err := s.BuildSubmission(testRules())
	require.NoError(t, err)

	require.Len(t, payload.TicketDetails, 2)
	padded := payload.TicketDetails[1]
	assert.Empty(t, padded.Name)
	assert.False(t, padded.IsOwner)
	assert.Equal(t, "Regular", padded.Category)
	assert.Equal(t, 100.0, padded.Price)
}

func TestBuildSubmissionRejectsInvalidSession(t *testing.T) {
	s := newTestSession()
	s = s.ChangeQuantity("regular", 1)

	payload, err := s.BuildSubmission(testRules())
	assert.Nil(t, payload)
	assertValidationCode(t, err, CodeNoOwner)
}
