package cards

import (
	"time"

	"github.com/google/uuid"
)

type CardState string

const (
	CardStateActive  CardState = "ACTIVE"
	CardStateExpired CardState = "EXPIRED"
	CardStateRevoked CardState = "REVOKED"
)

// Card is a physical NFC access card issued to a customer
type Card struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CustomerID uuid.UUID  `json:"customer_id" gorm:"type:uuid;uniqueIndex;not null"`
	SerialNo   string     `json:"serial_no" gorm:"unique;not null"`
	State      CardState  `json:"state" gorm:"type:varchar(20);default:'ACTIVE'"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}

// Status tells the checkout which card charges apply.
// Both flags default to true when the lookup fails or the customer is
// unknown: charging is the safer assumption and the amount is refunded
// server-side when a valid card turns out to exist.
type Status struct {
	NeedsCardFee     bool `json:"needs_card_fee"`
	NeedsRenewalCost bool `json:"needs_renewal_cost"`
}

// DefaultStatus is the safe fallback used on lookup failure
func DefaultStatus() Status {
	return Status{NeedsCardFee: true, NeedsRenewalCost: true}
}
