package catalog

import (
	"fmt"
	"strings"

	"github.com/avododokhov/numisvault/pkg/utils"
)

// CoinQuery is the optional filter set accepted by the coin listing
// endpoint. Zero values mean "not filtered".
type CoinQuery struct {
	Search         string
	CountryID      int
	DenominationID int
	MaterialID     int
	ConditionID    int
	SortBy         string
	SortOrder      string
	Page           int
	Limit          int
}

// sortColumns is the allow-list for ORDER BY interpolation. Column names
// cannot be bound as placeholders, so anything outside this list is
// rejected before it reaches the SQL text.
var sortColumns = map[string]bool{
	"id":              true,
	"name":            true,
	"year":            true,
	"estimated_value": true,
	"created_at":      true,
}

const coinSelect = `SELECT c.*, co.name AS country_name, d.value AS denomination_value,
       m.name AS material_name, cond.name AS condition_name
FROM coins c
LEFT JOIN countries co ON c.country_id = co.id
LEFT JOIN denominations d ON c.denomination_id = d.id
LEFT JOIN materials m ON c.material_id = m.id
LEFT JOIN conditions cond ON c.condition_id = cond.id
WHERE c.deleted_at IS NULL`

// Normalize applies pagination defaults and validates sort inputs.
func (q *CoinQuery) Normalize() error {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.SortBy == "" {
		q.SortBy = "id"
	}
	if !sortColumns[q.SortBy] {
		return utils.ValidationError(fmt.Sprintf("sortBy must be one of the known columns, got %q", q.SortBy))
	}
	q.SortOrder = strings.ToUpper(q.SortOrder)
	if q.SortOrder == "" {
		q.SortOrder = "ASC"
	}
	if q.SortOrder != "ASC" && q.SortOrder != "DESC" {
		return utils.ValidationError(fmt.Sprintf("sortOrder must be ASC or DESC, got %q", q.SortOrder))
	}
	return nil
}

// whereClauses appends one AND clause per present filter field, in a fixed
// order, numbering placeholders sequentially. Values are always bound,
// never concatenated into the SQL text.
func (q *CoinQuery) whereClauses(sb *strings.Builder, qualified bool) []interface{} {
	prefix := ""
	if qualified {
		prefix = "c."
	}

	args := make([]interface{}, 0, 5)
	n := 1

	if q.Search != "" {
		fmt.Fprintf(sb, " AND (%sname ILIKE $%d OR %sdescription ILIKE $%d)", prefix, n, prefix, n)
		args = append(args, "%"+q.Search+"%")
		n++
	}
	if q.CountryID != 0 {
		fmt.Fprintf(sb, " AND %scountry_id = $%d", prefix, n)
		args = append(args, q.CountryID)
		n++
	}
	if q.DenominationID != 0 {
		fmt.Fprintf(sb, " AND %sdenomination_id = $%d", prefix, n)
		args = append(args, q.DenominationID)
		n++
	}
	if q.MaterialID != 0 {
		fmt.Fprintf(sb, " AND %smaterial_id = $%d", prefix, n)
		args = append(args, q.MaterialID)
		n++
	}
	if q.ConditionID != 0 {
		fmt.Fprintf(sb, " AND %scondition_id = $%d", prefix, n)
		args = append(args, q.ConditionID)
		n++
	}
	return args
}

// Build assembles the parametrized select with ordering and pagination.
func (q *CoinQuery) Build() (string, []interface{}, error) {
	if err := q.Normalize(); err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	sb.WriteString(coinSelect)
	args := q.whereClauses(&sb, true)

	fmt.Fprintf(&sb, " ORDER BY c.%s %s", q.SortBy, q.SortOrder)

	offset := (q.Page - 1) * q.Limit
	fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, offset)

	return sb.String(), args, nil
}

// BuildCount assembles the matching count query: same filter clauses,
// no ordering or pagination.
func (q *CoinQuery) BuildCount() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) FROM coins WHERE deleted_at IS NULL")
	args := q.whereClauses(&sb, false)
	return sb.String(), args
}
