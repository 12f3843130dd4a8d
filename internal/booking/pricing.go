package booking

// PricingRules are the tariff constants applied at checkout
type PricingRules struct {
	VATRate        float64 `json:"vat_rate"`
	CardFee        float64 `json:"card_fee"`
	RenewalFee     float64 `json:"renewal_fee"`
	VIPFreeTickets int     `json:"vip_free_tickets"`
}

// PriceBreakdown is the itemized checkout total. It is recomputed from
// scratch on every change; nothing is incrementally mutated, so the
// figures can never drift from the selection.
type PriceBreakdown struct {
	BaseTicketPrice float64 `json:"base_ticket_price"`
	VipDiscount     float64 `json:"vip_discount"`
	TaxableAmount   float64 `json:"taxable_amount"`
	VAT             float64 `json:"vat"`
	CardCost        float64 `json:"card_cost"`
	RenewalCost     float64 `json:"renewal_cost"`
	Total           float64 `json:"total"`
}

// CalculatePrice prices a tier selection. Pure: same inputs, same
// breakdown.
//
// The VIP discount waives up to rules.VIPFreeTickets ticket units for
// VIP customers at unseated events. Units are consumed in catalog
// order, so when quantities span multiple tiers the earlier tier
// absorbs the discount first.
func CalculatePrice(catalog []Tier, quantities map[string]int, isUnseated, isVip, needsCardFee, needsRenewalCost bool, rules PricingRules) PriceBreakdown {
	var base float64
	for _, tier := range catalog {
		base += tier.Price * float64(quantities[tier.Key])
	}

	var discount float64
	if isUnseated && isVip {
		remaining := rules.VIPFreeTickets
		for _, tier := range catalog {
			if remaining == 0 {
				break
			}
			units := quantities[tier.Key]
			if units > remaining {
				units = remaining
			}
			discount += tier.Price * float64(units)
			remaining -= units
		}
	}

	// The discount only ever sums purchased units, but clamp anyway
	if discount > base {
		discount = base
	}

	taxable := base - discount
	vat := taxable * rules.VATRate

	var cardCost, renewalCost float64
	if needsCardFee {
		cardCost = rules.CardFee
	}
	if needsRenewalCost {
		renewalCost = rules.RenewalFee
	}

	return PriceBreakdown{
		BaseTicketPrice: base,
		VipDiscount:     discount,
		TaxableAmount:   taxable,
		VAT:             vat,
		CardCost:        cardCost,
		RenewalCost:     renewalCost,
		Total:           taxable + vat + cardCost + renewalCost,
	}
}

// Quote prices the session's current selection
func (s Session) Quote(rules PricingRules) PriceBreakdown {
	return CalculatePrice(s.Catalog, s.Quantities, s.IsUnseated, s.Account.IsVip,
		s.NeedsCardFee, s.NeedsRenewalCost, rules)
}
