package catalog

import (
	"strings"
	"testing"

	"github.com/avododokhov/numisvault/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinQueryNormalizeDefaults(t *testing.T) {
	q := CoinQuery{}
	require.NoError(t, q.Normalize())

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "id", q.SortBy)
	assert.Equal(t, "ASC", q.SortOrder)
}

func TestCoinQueryNormalizeRejectsUnknownSort(t *testing.T) {
	tests := []struct {
		name  string
		query CoinQuery
	}{
		{"unknown column", CoinQuery{SortBy: "password"}},
		{"injection attempt", CoinQuery{SortBy: "id; DROP TABLE coins"}},
		{"bad order", CoinQuery{SortBy: "year", SortOrder: "SIDEWAYS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Normalize()
			require.Error(t, err)

			var appErr *utils.CustomError
			require.True(t, utils.As(err, &appErr))
			assert.Equal(t, 400, appErr.Code)
		})
	}
}

func TestCoinQueryBuildNoFilters(t *testing.T) {
	q := CoinQuery{}
	sql, args, err := q.Build()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE c.deleted_at IS NULL ORDER BY c.id ASC LIMIT $1 OFFSET $2")
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestCoinQueryBuildAllFilters(t *testing.T) {
	q := CoinQuery{
		Search:         "kopek",
		CountryID:      3,
		DenominationID: 7,
		MaterialID:     2,
		ConditionID:    5,
		SortBy:         "year",
		SortOrder:      "desc",
		Page:           3,
		Limit:          20,
	}
	sql, args, err := q.Build()
	require.NoError(t, err)

	// One placeholder per filter clause plus LIMIT and OFFSET, numbered
	// sequentially with no gaps.
	assert.Equal(t, []interface{}{"%kopek%", 3, 7, 2, 5, 20, 40}, args)
	for i := 1; i <= len(args); i++ {
		assert.Contains(t, sql, "$"+string(rune('0'+i)))
	}
	assert.Contains(t, sql, "ORDER BY c.year DESC")
	assert.Contains(t, sql, "LIMIT $6 OFFSET $7")
	assert.NotContains(t, sql, "kopek", "values must be bound, not inlined")
}

func TestCoinQueryBuildOffset(t *testing.T) {
	tests := []struct {
		page, limit, offset int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 25, 100},
	}
	for _, tt := range tests {
		q := CoinQuery{Page: tt.page, Limit: tt.limit}
		_, args, err := q.Build()
		require.NoError(t, err)
		assert.Equal(t, tt.offset, args[len(args)-1])
	}
}

func TestCoinQueryBuildCount(t *testing.T) {
	q := CoinQuery{Search: "ruble", CountryID: 4}
	sql, args := q.BuildCount()

	assert.True(t, strings.HasPrefix(sql, "SELECT COUNT(*) FROM coins"))
	assert.NotContains(t, sql, "ORDER BY")
	assert.NotContains(t, sql, "LIMIT")
	assert.Equal(t, []interface{}{"%ruble%", 4}, args)
}

func TestCoinQueryCountMatchesListClauses(t *testing.T) {
	q := CoinQuery{Search: "denga", MaterialID: 1, ConditionID: 9}
	_, listArgs, err := q.Build()
	require.NoError(t, err)
	_, countArgs := q.BuildCount()

	// The count query binds the same filters, minus pagination.
	assert.Equal(t, listArgs[:len(listArgs)-2], countArgs)
}
