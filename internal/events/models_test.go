package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTierKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Golden Circle", "golden-circle"},
		{"VIP Box", "vip-box"},
		{"Regular", "regular"},
		{"  Early  Bird  ", "early-bird"},
		{"Tier #1 (Front)", "tier-1-front"},
		{"CAPS LOCK", "caps-lock"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTierKey(tt.label))
		})
	}
}

func TestEventToCatalogKeepsTierOrder(t *testing.T) {
	event := Event{
		Name:        "Cairo Sound Festival",
		IsUnseated:  true,
		CountryCode: "EG",
		Tiers: []TicketTier{
			{Key: "golden-circle", Label: "Golden Circle", CategoryName: "Golden Circle", Price: 300, SortOrder: 0},
			{Key: "regular", Label: "Regular", CategoryName: "Regular", Price: 100, SortOrder: 1},
		},
	}

	catalog := event.ToCatalog()

	assert.Equal(t, "Cairo Sound Festival", catalog.EventName)
	assert.True(t, catalog.IsUnseated)
	assert.Equal(t, "EG", catalog.CountryCode)
	assert.Equal(t, []string{"golden-circle", "regular"}, []string{catalog.Tiers[0].Key, catalog.Tiers[1].Key})
	assert.Equal(t, 300.0, catalog.Tiers[0].Price)
}
