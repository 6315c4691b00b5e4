package stats

import (
	"testing"

	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestZeroFilterMatchesEverything(t *testing.T) {
	items := []collectibles.Collectible{
		{Name: "Denga 1704", Year: ptr(1704)},
		{Name: "Undated medal"},
		{Name: "Modern ruble", Year: ptr(2020), CurrentValue: ptr(150.0)},
	}

	out := Apply(items, Filter{})
	assert.Equal(t, items, out)
}

func TestYearRangeTreatsMissingYearAsZero(t *testing.T) {
	items := []collectibles.Collectible{
		{Name: "Denga", Year: ptr(1704)},
		{Name: "Ruble", Year: ptr(2020)},
		{Name: "Undated"},
	}

	out := Apply(items, Filter{YearFrom: ptr(1700), YearTo: ptr(1800)})

	assert.Len(t, out, 1)
	assert.Equal(t, "Denga", out[0].Name)
}

func TestPriceRangeTreatsMissingValueAsZero(t *testing.T) {
	items := []collectibles.Collectible{
		{Name: "Cheap", CurrentValue: ptr(5.0)},
		{Name: "Dear", CurrentValue: ptr(500.0)},
		{Name: "Unvalued"},
	}

	out := Apply(items, Filter{PriceFrom: ptr(1.0), PriceTo: ptr(100.0)})

	assert.Len(t, out, 1)
	assert.Equal(t, "Cheap", out[0].Name)
}

func TestSearchFieldSets(t *testing.T) {
	item := collectibles.Collectible{
		Name:          "Poltina",
		Country:       "Russia",
		Description:   "silver half ruble",
		CatalogNumber: "KM-123",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"name match", Filter{Search: "polt"}, true},
		{"country match", Filter{Search: "russia"}, true},
		{"description matches in gallery set", Filter{Search: "silver"}, true},
		{"catalog number not in gallery set", Filter{Search: "KM-123"}, false},
		{"catalog number in admin set", Filter{Search: "km-123", SearchFields: AdminSearchFields}, true},
		{"description not in admin set", Filter{Search: "silver", SearchFields: AdminSearchFields}, false},
		{"no match anywhere", Filter{Search: "banknote"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&item))
		})
	}
}

// match avoids taking the address of a composite literal at each call site.
func match(f Filter, item collectibles.Collectible) bool { return f.Matches(&item) }

func TestCountryIsSubstringCaseInsensitive(t *testing.T) {
	item := collectibles.Collectible{Name: "Thaler", Country: "Austria-Hungary"}

	assert.True(t, match(Filter{Country: "hungary"}, item))
	assert.False(t, match(Filter{Country: "Prussia"}, item))
}

func TestConditionAndStatusMembership(t *testing.T) {
	item := collectibles.Collectible{Name: "Kopek", Condition: "XF", Status: collectibles.StatusForSale}

	assert.True(t, match(Filter{Conditions: []string{"UNC", "XF"}}, item))
	assert.False(t, match(Filter{Conditions: []string{"UNC", "AU"}}, item))
	assert.True(t, match(Filter{Statuses: []string{collectibles.StatusForSale}}, item))
	assert.False(t, match(Filter{Statuses: []string{collectibles.StatusSold}}, item))
}

func TestHasImagesTriState(t *testing.T) {
	withImage := collectibles.Collectible{Name: "A", FrontImage: "front.jpg"}
	without := collectibles.Collectible{Name: "B"}

	assert.True(t, match(Filter{HasImages: ptr(true)}, withImage))
	assert.False(t, match(Filter{HasImages: ptr(true)}, without))
	assert.True(t, match(Filter{HasImages: ptr(false)}, without))
	assert.True(t, match(Filter{}, withImage))
	assert.True(t, match(Filter{}, without))
}

func TestClausesAreConjunctive(t *testing.T) {
	items := []collectibles.Collectible{
		{Name: "Match", Country: "Russia", Year: ptr(1900), Condition: "VF"},
		{Name: "Wrong year", Country: "Russia", Year: ptr(1800), Condition: "VF"},
		{Name: "Wrong grade", Country: "Russia", Year: ptr(1900), Condition: "G"},
	}

	out := Apply(items, Filter{
		Country:    "russia",
		YearFrom:   ptr(1850),
		Conditions: []string{"VF", "XF"},
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "Match", out[0].Name)
}

func TestApplyPreservesOrder(t *testing.T) {
	items := []collectibles.Collectible{
		{Name: "c", Year: ptr(1910)},
		{Name: "a", Year: ptr(1920)},
		{Name: "b", Year: ptr(1930)},
	}

	out := Apply(items, Filter{YearFrom: ptr(1900)})

	assert.Equal(t, []string{"c", "a", "b"}, []string{out[0].Name, out[1].Name, out[2].Name})
}
