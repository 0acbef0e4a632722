// Package querybuilder assembles read-only SELECT statements with numbered
// Postgres placeholders.
package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

// sqlWriter accumulates SQL text and the arguments bound to it.
type sqlWriter struct {
	strings.Builder
	args []any
}

// bind appends value and returns its placeholder.
func (w *sqlWriter) bind(value any) string {
	w.args = append(w.args, value)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *sqlWriter) list(keyword string, parts []string) {
	if len(parts) == 0 {
		return
	}
	w.WriteString(keyword)
	w.WriteString(strings.Join(parts, ", "))
}

// Condition renders one WHERE predicate.
type Condition func(w *sqlWriter)

func Eq(column string, value any) Condition {
	return func(w *sqlWriter) {
		w.WriteString(column + " = " + w.bind(value))
	}
}

// Or joins conditions with OR inside parentheses.
func Or(conditions ...Condition) Condition {
	return func(w *sqlWriter) {
		w.WriteByte('(')
		for i, c := range conditions {
			if i > 0 {
				w.WriteString(" OR ")
			}
			c(w)
		}
		w.WriteByte(')')
	}
}

type join struct {
	kind, table, on string
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []join
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Join(table, on string) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "JOIN", table: table, on: on})
	return b
}

func (b *SelectBuilder) LeftJoin(table, on string) *SelectBuilder {
	b.joins = append(b.joins, join{kind: "LEFT JOIN", table: table, on: on})
	return b
}

// Where adds predicates joined with AND.
func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

// Limit of zero or less means no limit.
func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, errors.New("querybuilder: no columns selected")
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("querybuilder: no table")
	}

	w := &sqlWriter{}
	w.list("SELECT ", b.columns)
	w.WriteString(" FROM " + b.table)
	for _, j := range b.joins {
		if strings.TrimSpace(j.table) == "" || strings.TrimSpace(j.on) == "" {
			return "", nil, errors.New("querybuilder: join needs a table and an ON clause")
		}
		w.WriteString(" " + j.kind + " " + j.table + " ON " + j.on)
	}
	for i, c := range b.where {
		if i == 0 {
			w.WriteString(" WHERE ")
		} else {
			w.WriteString(" AND ")
		}
		c(w)
	}
	w.list(" GROUP BY ", b.groupBy)
	w.list(" ORDER BY ", b.orderBy)
	if b.limit > 0 {
		w.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}

	return w.String(), w.args, nil
}
