// Package stats implements the in-memory filter predicate and the
// dashboard aggregations over the collectible registry.
package stats

import (
	"strings"

	"github.com/avododokhov/numisvault/internal/models/collectibles"
)

// Searchable fields. Which of them a search matches against depends on the
// call site: galleries search descriptions, the admin table searches
// catalog numbers.
const (
	SearchName          = "name"
	SearchCountry       = "country"
	SearchDescription   = "description"
	SearchCatalogNumber = "catalog_number"
)

// DisplaySearchFields is the gallery search field set.
var DisplaySearchFields = []string{SearchName, SearchCountry, SearchDescription}

// AdminSearchFields is the admin-table search field set.
var AdminSearchFields = []string{SearchName, SearchCountry, SearchCatalogNumber}

// Filter is the compound predicate applied to an in-memory collection.
// All active clauses are conjunctive. The zero Filter matches everything.
//
// The struct is what gets persisted per view key, so field names mirror
// the client-side filter object.
type Filter struct {
	Search     string   `json:"search,omitempty"`
	YearFrom   *int     `json:"yearFrom,omitempty"`
	YearTo     *int     `json:"yearTo,omitempty"`
	PriceFrom  *float64 `json:"priceFrom,omitempty"`
	PriceTo    *float64 `json:"priceTo,omitempty"`
	Country    string   `json:"country,omitempty"`
	CategoryID string   `json:"categoryId,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
	Statuses   []string `json:"statuses,omitempty"`
	HasImages  *bool    `json:"hasImages,omitempty"`

	// SearchFields selects which fields Search matches against. Not part
	// of the persisted filter state; defaults to DisplaySearchFields.
	SearchFields []string `json:"-"`
}

// Matches reports whether one item satisfies every active clause.
func (f *Filter) Matches(item *collectibles.Collectible) bool {
	if f.Search != "" && !f.matchesSearch(item) {
		return false
	}

	// Missing year and value count as zero for range comparisons.
	year := 0
	if item.Year != nil {
		year = *item.Year
	}
	if f.YearFrom != nil && year < *f.YearFrom {
		return false
	}
	if f.YearTo != nil && year > *f.YearTo {
		return false
	}

	value := 0.0
	if item.CurrentValue != nil {
		value = *item.CurrentValue
	}
	if f.PriceFrom != nil && value < *f.PriceFrom {
		return false
	}
	if f.PriceTo != nil && value > *f.PriceTo {
		return false
	}

	if f.Country != "" && !strings.Contains(strings.ToLower(item.Country), strings.ToLower(f.Country)) {
		return false
	}
	if f.CategoryID != "" && item.CategoryID != f.CategoryID {
		return false
	}
	if len(f.Conditions) > 0 && !contains(f.Conditions, item.Condition) {
		return false
	}
	if len(f.Statuses) > 0 && !contains(f.Statuses, item.Status) {
		return false
	}

	if f.HasImages != nil {
		hasAny := item.FrontImage != "" || item.BackImage != ""
		if *f.HasImages != hasAny {
			return false
		}
	}

	return true
}

func (f *Filter) matchesSearch(item *collectibles.Collectible) bool {
	fields := f.SearchFields
	if len(fields) == 0 {
		fields = DisplaySearchFields
	}
	needle := strings.ToLower(f.Search)
	for _, field := range fields {
		var haystack string
		switch field {
		case SearchName:
			haystack = item.Name
		case SearchCountry:
			haystack = item.Country
		case SearchDescription:
			haystack = item.Description
		case SearchCatalogNumber:
			haystack = item.CatalogNumber
		}
		if haystack != "" && strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

// Apply returns the subset of items matching the filter, preserving order.
func Apply(items []collectibles.Collectible, f Filter) []collectibles.Collectible {
	out := make([]collectibles.Collectible, 0, len(items))
	for i := range items {
		if f.Matches(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func contains(arr []string, s string) bool {
	for _, a := range arr {
		if a == s {
			return true
		}
	}
	return false
}
