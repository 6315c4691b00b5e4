package stats

import (
	"testing"
	"time"

	"github.com/avododokhov/numisvault/internal/models/collectibles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByType(t *testing.T) {
	items := []collectibles.Collectible{
		{Type: collectibles.TypeCoin},
		{Type: collectibles.TypeCoin},
		{Type: collectibles.TypeBanknote},
	}

	counts := CountByType(items)

	assert.Equal(t, map[string]int{"coin": 2, "banknote": 1}, counts)
}

func TestValueByTypeSkipsNilValues(t *testing.T) {
	items := []collectibles.Collectible{
		{Type: collectibles.TypeCoin, CurrentValue: ptr(100.0)},
		{Type: collectibles.TypeCoin, CurrentValue: ptr(50.5)},
		{Type: collectibles.TypeCoin},
		{Type: collectibles.TypeMedal},
	}

	sums := ValueByType(items)

	assert.InDelta(t, 150.5, sums["coin"], 0.001)
	assert.Zero(t, sums["medal"])
}

func TestTopCountries(t *testing.T) {
	items := []collectibles.Collectible{
		{Country: "Russia"},
		{Country: "Germany"},
		{Country: "Russia"},
		{Country: "France"},
		{Country: ""},
	}

	out := TopCountries(items, 10)

	require.Len(t, out, 3)
	assert.Equal(t, NameCount{Name: "Russia", Count: 2}, out[0])
	// Germany and France tie at one; first appearance wins.
	assert.Equal(t, "Germany", out[1].Name)
	assert.Equal(t, "France", out[2].Name)
}

func TestTopCountriesTruncates(t *testing.T) {
	var items []collectibles.Collectible
	for _, c := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, collectibles.Collectible{Country: c})
	}

	out := TopCountries(items, 3)

	assert.Len(t, out, 3)
}

func TestCountByConditionFollowsGradeScale(t *testing.T) {
	items := []collectibles.Collectible{
		{Condition: "G"},
		{Condition: "UNC"},
		{Condition: "G"},
		{Condition: "XF"},
		{Condition: ""},
	}

	out := CountByCondition(items)

	// Best to worst, grades with no items omitted.
	assert.Equal(t, []NameCount{
		{Name: "UNC", Count: 1},
		{Name: "XF", Count: 1},
		{Name: "G", Count: 2},
	}, out)
}

func TestCountByDecade(t *testing.T) {
	items := []collectibles.Collectible{
		{Year: ptr(1987)},
		{Year: ptr(1984)},
		{Year: ptr(2021)},
		{Year: ptr(1700)},
		{},
	}

	out := CountByDecade(items)

	assert.Equal(t, []DecadeCount{
		{Decade: 1700, Count: 1},
		{Decade: 1980, Count: 2},
		{Decade: 2020, Count: 1},
	}, out)
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	items := []collectibles.Collectible{
		{CreatedAt: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC)},
		// Older than the window.
		{CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	out := MonthlySeries(items, now)

	require.Len(t, out, 12)
	assert.Equal(t, MonthCount{Month: "2025-10", Count: 1}, out[0])
	assert.Equal(t, MonthCount{Month: "2026-09", Count: 2}, out[11])
	for _, bucket := range out[1:11] {
		assert.Zero(t, bucket.Count, "month %s", bucket.Month)
	}
}

func TestSummarize(t *testing.T) {
	items := []collectibles.Collectible{
		{Type: collectibles.TypeCoin, Country: "Russia", CurrentValue: ptr(100.0), PurchasePrice: ptr(80.0), IsFavorite: true},
		{Type: collectibles.TypeCoin, Country: "Russia"},
		{Type: collectibles.TypeBanknote, Country: "Germany", CurrentValue: ptr(20.0)},
		{Type: collectibles.TypeMedal},
	}

	s := Summarize(items)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Coins)
	assert.Equal(t, 1, s.Banknotes)
	assert.Equal(t, 1, s.Medals)
	assert.InDelta(t, 120.0, s.TotalValue, 0.001)
	assert.InDelta(t, 80.0, s.TotalPurchase, 0.001)
	assert.Equal(t, 1, s.Favorites)
	assert.Equal(t, 2, s.Countries)
}
