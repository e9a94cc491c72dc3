package repository

import (
	"fmt"
	"strings"
)

// prefixSentinel closes the prefix range: [value, value+sentinel] matches
// every string starting with value, case-sensitively. Same trick the store
// query layer has always used in place of native prefix search.
const prefixSentinel = ""

// queryBuilder accumulates conjunctive conditions over document fields
// with positional placeholders. Clauses compose in any order; criteria
// that are never added can never narrow the result set.
type queryBuilder struct {
	conds []string
	args  []any
}

// prefix adds a case-sensitive starts-with clause as a closed range.
func (b *queryBuilder) prefix(field, value string) {
	expr := docField(field)
	b.conds = append(b.conds, fmt.Sprintf("%s >= $%d AND %s <= $%d",
		expr, len(b.args)+1, expr, len(b.args)+2))
	b.args = append(b.args, value, value+prefixSentinel)
}

// equal adds an exact-match clause on a string field.
func (b *queryBuilder) equal(field, value string) {
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", docField(field), len(b.args)+1))
	b.args = append(b.args, value)
}

// equalInt adds an exact-match clause on a numeric field.
func (b *queryBuilder) equalInt(field string, value int) {
	b.conds = append(b.conds, fmt.Sprintf("(%s)::bigint = $%d", docField(field), len(b.args)+1))
	b.args = append(b.args, value)
}

func (b *queryBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// page renders the full listing query: base + conditions + the
// newest-first ordering and pagination window.
func (b *queryBuilder) page(base string, limit, offset int) (string, []any) {
	sql := base + b.where() + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		len(b.args)+1, len(b.args)+2)
	args := append(append([]any{}, b.args...), limit, offset)
	return sql, args
}

// docField addresses a field inside the jsonb document. Field names are
// compile-time constants from the repositories, never caller input.
func docField(field string) string {
	return fmt.Sprintf("doc->>'%s'", field)
}
