package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRules() PricingRules {
	return PricingRules{
		VATRate:        0.14,
		CardFee:        150,
		RenewalFee:     150,
		VIPFreeTickets: 2,
	}
}

func TestCalculatePriceBasicBreakdown(t *testing.T) {
	catalog := testCatalog()
	quantities := map[string]int{"regular": 5}

	b := CalculatePrice(catalog, quantities, true, false, true, false, testRules())

	assert.Equal(t, 500.0, b.BaseTicketPrice)
	assert.Equal(t, 0.0, b.VipDiscount)
	assert.Equal(t, 500.0, b.TaxableAmount)
	assert.Equal(t, 70.0, b.VAT)
	assert.Equal(t, 150.0, b.CardCost)
	assert.Equal(t, 0.0, b.RenewalCost)
	assert.Equal(t, 720.0, b.Total)
}

func TestVipDiscountConsumesCatalogOrder(t *testing.T) {
	catalog := testCatalog()
	quantities := map[string]int{"golden-circle": 1, "regular": 2}

	b := CalculatePrice(catalog, quantities, true, true, false, false, testRules())

	// Two free units taken in catalog order: the golden ticket (300) and
	// one regular (100), never two regulars
	assert.Equal(t, 500.0, b.BaseTicketPrice)
	assert.Equal(t, 400.0, b.VipDiscount)
	assert.Equal(t, 100.0, b.TaxableAmount)
	assert.Equal(t, 14.0, b.VAT)
	assert.Equal(t, 114.0, b.Total)
}

func TestVipDiscountOnlyAtUnseatedEvents(t *testing.T) {
	catalog := testCatalog()
	quantities := map[string]int{"regular": 2}

	seated := CalculatePrice(catalog, quantities, false, true, false, false, testRules())
	assert.Equal(t, 0.0, seated.VipDiscount)

	unseated := CalculatePrice(catalog, quantities, true, true, false, false, testRules())
	assert.Equal(t, 200.0, unseated.VipDiscount)
	assert.Equal(t, 0.0, unseated.Total)
}

func TestVipDiscountCappedBySelection(t *testing.T) {
	catalog := testCatalog()
	quantities := map[string]int{"regular": 1}

	b := CalculatePrice(catalog, quantities, true, true, false, false, testRules())

	// Only one ticket bought, only one unit waived
	assert.Equal(t, 100.0, b.VipDiscount)
	assert.Equal(t, 0.0, b.TaxableAmount)
}

func TestCardAndRenewalFeesAreVATExempt(t *testing.T) {
	catalog := testCatalog()
	quantities := map[string]int{"regular": 1}

	b := CalculatePrice(catalog, quantities, false, false, true, true, testRules())

	// Fees are added after VAT, not taxed
	assert.Equal(t, 14.0, b.VAT)
	assert.Equal(t, 150.0, b.CardCost)
	assert.Equal(t, 150.0, b.RenewalCost)
	assert.Equal(t, 414.0, b.Total)
}

func TestCalculatePriceEmptySelection(t *testing.T) {
	b := CalculatePrice(testCatalog(), map[string]int{}, true, true, false, false, testRules())

	assert.Equal(t, 0.0, b.BaseTicketPrice)
	assert.Equal(t, 0.0, b.Total)
}

func TestSessionQuoteUsesSessionFlags(t *testing.T) {
	s := newTestSession() // unseated, card fee due, no renewal
	s = s.ChangeQuantity("regular", 2)

	b := s.Quote(testRules())

	assert.Equal(t, 200.0, b.BaseTicketPrice)
	assert.Equal(t, 0.0, b.VipDiscount, "account is not VIP")
	assert.Equal(t, 150.0, b.CardCost)
	assert.Equal(t, 0.0, b.RenewalCost)
	assert.Equal(t, 378.0, b.Total)
}
