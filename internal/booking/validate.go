package booking

// TicketDetail is one ticket's line in the submission payload
type TicketDetail struct {
	Name     string  `json:"name"`
	Mobile   string  `json:"mobile"`
	Email    string  `json:"email"`
	IsOwner  bool    `json:"is_owner"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// SubmissionPayload is the validated booking handed to the payment
// collaborator. Category anchors on the first tier in catalog order
// with a non-zero quantity, even when the selection spans tiers.
type SubmissionPayload struct {
	Category      string         `json:"category"`
	Quantity      int            `json:"quantity"`
	TicketDetails []TicketDetail `json:"ticket_details"`
	Amount        float64        `json:"amount"`
}

// Validate runs the submission checks in order, returning the first
// violation. The order is part of the contract: the customer is told
// about the most fundamental problem first.
func (s Session) Validate() error {
	if s.TotalTickets() == 0 {
		return newValidationError(CodeNoTickets, "no tickets selected")
	}

	switch owners := s.OwnerCount(); {
	case owners > 1:
		return newValidationError(CodeMultipleOwners, "only one ticket may be yours")
	case owners == 0:
		return newValidationError(CodeNoOwner, "mark one ticket as yours")
	}

	for _, slot := range s.Slots {
		if slot.IsOwnerTicket {
			continue
		}
		if sameMobile(slot.Mobile, s.Account.Mobile) {
			return newValidationError(CodeMobileConflict, "a guest ticket cannot use your own mobile number")
		}
	}

	// Normalized pairwise, so "01098765432" and "+20 1098765432" collide
	for i := range s.Slots {
		for j := i + 1; j < len(s.Slots); j++ {
			if sameMobile(s.Slots[i].Mobile, s.Slots[j].Mobile) {
				return newValidationError(CodeDuplicateMobile, "two tickets cannot share the same mobile number")
			}
		}
	}

	for _, slot := range s.Slots {
		if slot.IsOwnerTicket {
			continue
		}
		if slot.Name == "" {
			return newValidationError(CodeMissingName, "every guest ticket needs a name")
		}
		if !isValidMobile(slot.Mobile) {
			return newValidationError(CodeInvalidMobile, "every guest ticket needs a valid mobile number")
		}
	}

	for _, slot := range s.Slots {
		if slot.IsOwnerTicket {
			// The owner inherits the account email
			continue
		}
		if slot.MobileCountryCode != s.DefaultCountry && slot.Email == "" {
			return newValidationError(CodeMissingEmail, "international guest tickets need an email address")
		}
	}

	return nil
}

// BuildSubmission validates the session and assembles the payment
// payload. Slots missing from the store are padded with empty
// placeholders carrying the tier at that sequence position.
func (s Session) BuildSubmission(rules PricingRules) (*SubmissionPayload, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	total := s.TotalTickets()
	details := make([]TicketDetail, 0, total)

	for i := 0; i < total; i++ {
		tier, _ := s.tierByKey(s.Sequence[i])

		detail := TicketDetail{
			Category: tier.CategoryName,
			Price:    tier.Price,
		}
		if i < len(s.Slots) {
			slot := s.Slots[i]
			detail.Name = slot.Name
			detail.Mobile = slot.Mobile
			detail.Email = slot.Email
			detail.IsOwner = slot.IsOwnerTicket
		}
		details = append(details, detail)
	}

	breakdown := s.Quote(rules)

	return &SubmissionPayload{
		Category:      s.firstSelectedCategory(),
		Quantity:      total,
		TicketDetails: details,
		Amount:        breakdown.Total,
	}, nil
}

// firstSelectedCategory returns the category name of the first tier in
// catalog order with a non-zero quantity
func (s Session) firstSelectedCategory() string {
	for _, tier := range s.Catalog {
		if s.Quantities[tier.Key] > 0 {
			return tier.CategoryName
		}
	}
	return ""
}
