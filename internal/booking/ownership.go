package booking

import "time"

// guestAssigned reports whether a slot has been filled in for a guest
func guestAssigned(slot TicketSlot) bool {
	return slot.Name != "" && slot.Mobile != ""
}

// ownerIndex returns the index of the owner slot, or -1
func (s Session) ownerIndex() int {
	for i, slot := range s.Slots {
		if slot.IsOwnerTicket {
			return i
		}
	}
	return -1
}

// OwnerCount returns how many slots are marked as the owner's ticket
func (s Session) OwnerCount() int {
	count := 0
	for _, slot := range s.Slots {
		if slot.IsOwnerTicket {
			count++
		}
	}
	return count
}

// promote marks a slot as the owner's ticket and fills it with the
// account holder's details
func (s *Session) promote(index int) {
	slot := &s.Slots[index]
	slot.IsOwnerTicket = true
	slot.Name = s.Account.Name
	slot.Mobile = s.Account.Mobile
	slot.Email = s.Account.Email
	slot.MobileCountryCode = s.Account.CountryCode
}

// demote clears an owner slot back to an empty guest slot
func (s *Session) demote(index int) {
	slot := &s.Slots[index]
	slot.IsOwnerTicket = false
	slot.Name = ""
	slot.Mobile = ""
	slot.Email = ""
	slot.MobileCountryCode = s.DefaultCountry
}

// ensureOwnerSlot auto-assigns the owner's ticket when the customer has
// filled in every other slot and exactly one remains untouched. A
// single ticket is never auto-assigned; the customer marks it
// explicitly. Nothing happens while an owner already exists.
func (s *Session) ensureOwnerSlot() {
	if len(s.Sequence) <= 1 {
		return
	}
	if s.ownerIndex() >= 0 {
		return
	}

	unassigned := -1
	for i, slot := range s.Slots {
		if !slot.IsOwnerTicket && !guestAssigned(slot) {
			if unassigned >= 0 {
				return // more than one open slot, nothing to infer
			}
			unassigned = i
		}
	}

	if unassigned >= 0 {
		s.promote(unassigned)
	}
}

// AssignOwner explicitly marks the slot at targetIndex as the owner's
// ticket, transferring ownership from the current owner slot if one
// exists. The previous owner slot is cleared, not destroyed.
func (s Session) AssignOwner(targetIndex int) (Session, error) {
	if targetIndex < 0 || targetIndex >= len(s.Slots) {
		return s, newValidationError(CodeSlotOutOfRange, "no such ticket")
	}

	if s.Slots[targetIndex].IsOwnerTicket {
		// The owner cannot unassign themselves; they assign another
		// slot instead
		return s, newValidationError(CodeOwnerLocked, "this ticket is already yours, assign another ticket to transfer it")
	}

	next := s.clone()
	ownerIdx := next.ownerIndex()

	if ownerIdx < 0 {
		next.promote(targetIndex)
		next.UpdatedAt = time.Now().UTC()
		return next, nil
	}

	if next.Slots[ownerIdx].TierKey == next.Slots[targetIndex].TierKey {
		return s, newValidationError(CodeSameTierSwap, "you cannot hold two tickets in the same category")
	}

	next.demote(ownerIdx)
	next.promote(targetIndex)
	next.UpdatedAt = time.Now().UTC()
	return next, nil
}

// SlotUpdate carries the editable guest fields of one slot. Nil fields
// are left untouched.
type SlotUpdate struct {
	Name              *string `json:"name"`
	Mobile            *string `json:"mobile"`
	Email             *string `json:"email"`
	MobileCountryCode *string `json:"mobile_country_code"`
}

// UpdateSlot applies a field edit to one slot. Setting a non-owner
// slot's mobile to the account holder's own number is rejected and the
// prior state is returned unchanged. A mobile edit re-detects the
// slot's country unless the country is set in the same update.
func (s Session) UpdateSlot(index int, upd SlotUpdate) (Session, error) {
	if index < 0 || index >= len(s.Slots) {
		return s, newValidationError(CodeSlotOutOfRange, "no such ticket")
	}

	if upd.Mobile != nil && !s.Slots[index].IsOwnerTicket && sameMobile(*upd.Mobile, s.Account.Mobile) {
		return s, newValidationError(CodeMobileConflict, "this mobile number belongs to your own ticket")
	}

	next := s.clone()
	slot := &next.Slots[index]

	if upd.Name != nil {
		slot.Name = *upd.Name
	}
	if upd.Mobile != nil {
		slot.Mobile = *upd.Mobile
		slot.MobileCountryCode = detectCountryCode(*upd.Mobile, next.DefaultCountry)
	}
	if upd.Email != nil {
		slot.Email = *upd.Email
	}
	if upd.MobileCountryCode != nil {
		slot.MobileCountryCode = *upd.MobileCountryCode
	}

	next.ensureOwnerSlot()
	next.UpdatedAt = time.Now().UTC()
	return next, nil
}
