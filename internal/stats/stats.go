package stats

import (
	"sort"
	"time"

	"github.com/avododokhov/numisvault/internal/models/collectibles"
)

// TopCountryLimit caps the by-country breakdown for dashboards.
const TopCountryLimit = 10

// NameCount is a generic label/count pair for chart data.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DecadeCount is one decade bucket, keyed by its starting year.
type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// MonthCount is one calendar-month bucket, keyed as YYYY-MM.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Summary is the headline dashboard numbers.
type Summary struct {
	Total         int     `json:"total"`
	Coins         int     `json:"coins"`
	Banknotes     int     `json:"banknotes"`
	Medals        int     `json:"medals"`
	TotalValue    float64 `json:"total_value"`
	TotalPurchase float64 `json:"total_purchase"`
	Favorites     int     `json:"favorites"`
	Countries     int     `json:"countries"`
}

// CountByType counts items per collectible type.
func CountByType(items []collectibles.Collectible) map[string]int {
	counts := make(map[string]int)
	for i := range items {
		counts[items[i].Type]++
	}
	return counts
}

// ValueByType sums current values per collectible type. Missing values
// count as zero.
func ValueByType(items []collectibles.Collectible) map[string]float64 {
	sums := make(map[string]float64)
	for i := range items {
		value := 0.0
		if items[i].CurrentValue != nil {
			value = *items[i].CurrentValue
		}
		sums[items[i].Type] += value
	}
	return sums
}

// TopCountries returns up to n countries by item count, descending, ties
// broken by the order a country first appears in the input. Items with no
// country are skipped.
func TopCountries(items []collectibles.Collectible, n int) []NameCount {
	counts := make(map[string]int)
	var order []string
	for i := range items {
		country := items[i].Country
		if country == "" {
			continue
		}
		if _, seen := counts[country]; !seen {
			order = append(order, country)
		}
		counts[country]++
	}

	out := make([]NameCount, 0, len(order))
	for _, country := range order {
		out = append(out, NameCount{Name: country, Count: counts[country]})
	}
	// SliceStable keeps first-seen order within equal counts.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// CountByCondition counts items per condition grade, skipping ungraded
// items, in scale order best to worst.
func CountByCondition(items []collectibles.Collectible) []NameCount {
	counts := make(map[string]int)
	for i := range items {
		if items[i].Condition != "" {
			counts[items[i].Condition]++
		}
	}

	out := make([]NameCount, 0, len(counts))
	for _, grade := range collectibles.ConditionGrades {
		if counts[grade] > 0 {
			out = append(out, NameCount{Name: grade, Count: counts[grade]})
		}
	}
	return out
}

// CountByDecade buckets items by floor(year/10)*10, ascending. Items with
// no year contribute to no bucket.
func CountByDecade(items []collectibles.Collectible) []DecadeCount {
	counts := make(map[int]int)
	for i := range items {
		if items[i].Year == nil {
			continue
		}
		decade := (*items[i].Year / 10) * 10
		counts[decade]++
	}

	out := make([]DecadeCount, 0, len(counts))
	for decade, count := range counts {
		out = append(out, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Decade < out[j].Decade
	})
	return out
}

// MonthlySeries buckets item creations into the trailing 12 calendar
// months ending at now's month, oldest to newest. Months with no
// creations appear with a zero count.
func MonthlySeries(items []collectibles.Collectible, now time.Time) []MonthCount {
	out := make([]MonthCount, 0, 12)
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		count := 0
		for j := range items {
			created := items[j].CreatedAt
			if created.Year() == month.Year() && created.Month() == month.Month() {
				count++
			}
		}
		out = append(out, MonthCount{Month: month.Format("2006-01"), Count: count})
	}
	return out
}

// Summarize computes the headline numbers over the whole collection.
func Summarize(items []collectibles.Collectible) Summary {
	s := Summary{Total: len(items)}
	countries := make(map[string]bool)
	for i := range items {
		item := &items[i]
		switch item.Type {
		case collectibles.TypeCoin:
			s.Coins++
		case collectibles.TypeBanknote:
			s.Banknotes++
		case collectibles.TypeMedal:
			s.Medals++
		}
		if item.CurrentValue != nil {
			s.TotalValue += *item.CurrentValue
		}
		if item.PurchasePrice != nil {
			s.TotalPurchase += *item.PurchasePrice
		}
		if item.IsFavorite {
			s.Favorites++
		}
		if item.Country != "" {
			countries[item.Country] = true
		}
	}
	s.Countries = len(countries)
	return s
}
