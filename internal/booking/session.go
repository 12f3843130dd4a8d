package booking

import (
	"time"
)

// Tier is one purchasable ticket category, frozen into the session when
// it starts. Catalog order is significant: the VIP discount consumes
// tickets in this order.
type Tier struct {
	Key            string  `json:"key"`
	Label          string  `json:"label"`
	CategoryName   string  `json:"category_name"`
	Color          string  `json:"color"`
	Price          float64 `json:"price"`
	AvailableCount int     `json:"available_count"`
}

// AccountHolder is the authenticated customer the session belongs to
type AccountHolder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
	CountryCode string `json:"country_code"`
	IsVip       bool   `json:"is_vip"`
}

// TicketSlot is one physical ticket's assignment record. Slots are
// positional: when earlier tickets are removed, a slot keeps its filled
// details and takes over the tier at its new position.
type TicketSlot struct {
	Index             int    `json:"index"`
	TierKey           string `json:"tier_key"`
	Name              string `json:"name"`
	Mobile            string `json:"mobile"`
	Email             string `json:"email"`
	MobileCountryCode string `json:"mobile_country_code"`
	IsOwnerTicket     bool   `json:"is_owner_ticket"`
}

// Session is one customer's in-progress booking. Every operation
// returns a fresh value; the stored snapshot is replaced wholesale, so
// a failed operation leaves the previous state untouched.
type Session struct {
	ID             string        `json:"id"`
	CustomerID     string        `json:"customer_id"`
	EventID        string        `json:"event_id"`
	EventName      string        `json:"event_name"`
	IsUnseated     bool          `json:"is_unseated"`
	DefaultCountry string        `json:"default_country"`
	Catalog        []Tier        `json:"catalog"`
	Quantities     map[string]int `json:"quantities"`
	Sequence       []string      `json:"sequence"`
	Slots          []TicketSlot  `json:"slots"`
	Account        AccountHolder `json:"account"`

	NeedsCardFee     bool `json:"needs_card_fee"`
	NeedsRenewalCost bool `json:"needs_renewal_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession creates an empty session bound to a customer, an event
// catalog and the customer's card-charge flags.
func NewSession(id string, account AccountHolder, eventID, eventName string, isUnseated bool, defaultCountry string, catalog []Tier, needsCardFee, needsRenewalCost bool) Session {
	now := time.Now().UTC()
	return Session{
		ID:               id,
		CustomerID:       account.ID,
		EventID:          eventID,
		EventName:        eventName,
		IsUnseated:       isUnseated,
		DefaultCountry:   defaultCountry,
		Catalog:          catalog,
		Quantities:       map[string]int{},
		Sequence:         []string{},
		Slots:            []TicketSlot{},
		Account:          account,
		NeedsCardFee:     needsCardFee,
		NeedsRenewalCost: needsRenewalCost,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// TotalTickets returns the number of allocated ticket slots
func (s Session) TotalTickets() int {
	return len(s.Sequence)
}

// TierQuantity returns the selected quantity for a tier key
func (s Session) TierQuantity(key string) int {
	return s.Quantities[key]
}

// HasTier reports whether the catalog contains a tier key
func (s Session) HasTier(key string) bool {
	_, ok := s.tierByKey(key)
	return ok
}

func (s Session) tierByKey(key string) (Tier, bool) {
	for _, t := range s.Catalog {
		if t.Key == key {
			return t, true
		}
	}
	return Tier{}, false
}

// clone deep-copies the mutable parts of the session
func (s Session) clone() Session {
	out := s

	out.Quantities = make(map[string]int, len(s.Quantities))
	for k, v := range s.Quantities {
		out.Quantities[k] = v
	}

	out.Sequence = make([]string, len(s.Sequence))
	copy(out.Sequence, s.Sequence)

	out.Slots = make([]TicketSlot, len(s.Slots))
	copy(out.Slots, s.Slots)

	return out
}

// ChangeQuantity adjusts a tier's selected quantity by delta and
// returns the reconciled session. Quantities clamp at zero; rapid
// over-decrements are absorbed rather than rejected. Unknown tier keys
// leave the session unchanged.
func (s Session) ChangeQuantity(tierKey string, delta int) Session {
	if _, ok := s.tierByKey(tierKey); !ok {
		return s
	}

	next := s.clone()

	current := next.Quantities[tierKey]
	target := current + delta
	if target < 0 {
		target = 0
	}

	if target > current {
		for i := 0; i < target-current; i++ {
			next.Sequence = append(next.Sequence, tierKey)
		}
	} else if target < current {
		for i := 0; i < current-target; i++ {
			next.removeEarliest(tierKey)
		}
	}

	if target == 0 {
		delete(next.Quantities, tierKey)
	} else {
		next.Quantities[tierKey] = target
	}

	next.reconcile()
	next.ensureOwnerSlot()
	next.UpdatedAt = time.Now().UTC()
	return next
}

// removeEarliest drops the first remaining occurrence of tierKey from
// the sequence. Removal is front-first, not last-in-first-out, so the
// earliest slot of that tier is the one released.
func (s *Session) removeEarliest(tierKey string) {
	for i, key := range s.Sequence {
		if key == tierKey {
			s.Sequence = append(s.Sequence[:i], s.Sequence[i+1:]...)
			return
		}
	}
}

// reconcile brings the slot store in line with the sequence: one slot
// per sequence position, created empty, retargeted in place, trailing
// slots dropped.
func (s *Session) reconcile() {
	slots := make([]TicketSlot, len(s.Sequence))
	for i, tierKey := range s.Sequence {
		if i < len(s.Slots) {
			slots[i] = s.Slots[i]
			slots[i].Index = i
			slots[i].TierKey = tierKey
		} else {
			slots[i] = TicketSlot{
				Index:             i,
				TierKey:           tierKey,
				MobileCountryCode: s.DefaultCountry,
			}
		}
	}
	s.Slots = slots
}
