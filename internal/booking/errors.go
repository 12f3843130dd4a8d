package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a booking session has expired or
// never existed.
var ErrSessionNotFound = errors.New("booking session not found")

// ValidationError is a recoverable rule violation. The session state is
// never modified when one is returned; the customer fixes the input and
// retries.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// Validation error codes
const (
	CodeNoTickets        = "no_tickets"
	CodeNoOwner          = "no_owner"
	CodeMultipleOwners   = "multiple_owners"
	CodeOwnerLocked      = "owner_locked"
	CodeSameTierSwap     = "same_tier_swap"
	CodeMobileConflict   = "mobile_conflict"
	CodeDuplicateMobile  = "duplicate_mobile"
	CodeMissingName      = "missing_name"
	CodeInvalidMobile    = "invalid_mobile"
	CodeMissingEmail     = "missing_email"
	CodeUnknownTier      = "unknown_tier"
	CodeSlotOutOfRange   = "slot_out_of_range"
	CodeTierUnavailable  = "tier_unavailable"
	CodeEventNotBookable = "event_not_bookable"
)

// UpstreamDataError marks a failed fetch from a collaborator (catalog,
// card status). Callers degrade to safe defaults where possible.
type UpstreamDataError struct {
	Source string
	Err    error
}

func (e *UpstreamDataError) Error() string {
	return fmt.Sprintf("upstream %s fetch failed: %v", e.Source, e.Err)
}

func (e *UpstreamDataError) Unwrap() error {
	return e.Err
}

// PaymentInitiationError wraps an opaque gateway failure. The booking
// state is preserved so the customer can resubmit.
type PaymentInitiationError struct {
	Err error
}

func (e *PaymentInitiationError) Error() string {
	if e.Err == nil {
		return "payment could not be initiated, please try again"
	}
	return e.Err.Error()
}

func (e *PaymentInitiationError) Unwrap() error {
	return e.Err
}
