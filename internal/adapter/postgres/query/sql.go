package query

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const returningAll = "RETURNING *"

// predicates renders the filters. Non-null values are bound as-is via
// sq.Expr: sq.Eq would call driver.Valuer on them and turn a uuid.UUID
// into a string, and a slice into an IN list.
func (b *Builder) predicates() []sq.Sqlizer {
	preds := make([]sq.Sqlizer, len(b.filters))
	for i, f := range b.filters {
		switch {
		case isNull(f.value) && f.negate:
			preds[i] = sq.Expr(f.column + " IS NOT NULL")
		case isNull(f.value):
			preds[i] = sq.Expr(f.column + " IS NULL")
		case f.negate:
			preds[i] = sq.Expr(f.column+" <> ?", f.value)
		default:
			preds[i] = sq.Expr(f.column+" = ?", f.value)
		}
	}
	return preds
}

// isNull reports untyped nil and nil pointers, maps and slices.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (b *Builder) selectSQL() (string, []any, error) {
	cols := b.columns
	if len(cols) == 0 {
		cols = []string{"*"}
	}

	q := b.c.sb.Select(cols...).From(b.table)
	for _, p := range b.predicates() {
		q = q.Where(p)
	}
	if b.order != nil {
		dir := "DESC"
		if b.order.ascending {
			dir = "ASC"
		}
		q = q.OrderBy(b.order.column + " " + dir)
	}
	if b.hasLimit {
		q = q.Limit(b.limit)
	}
	return q.ToSql()
}

func (b *Builder) countSQL() (string, []any, error) {
	q := b.c.sb.Select("COUNT(*) AS count").From(b.table)
	for _, p := range b.predicates() {
		q = q.Where(p)
	}
	return q.ToSql()
}

// insertSQL builds one INSERT ... RETURNING *. With conflict columns it
// becomes an upsert that overwrites the remaining columns from EXCLUDED.
func (b *Builder) insertSQL(rec Record, conflict []string) (string, []any, error) {
	cols, err := recordColumns(rec)
	if err != nil {
		return "", nil, err
	}

	if len(cols) == 0 {
		if len(conflict) > 0 {
			return "", nil, fmt.Errorf("upsert with empty record")
		}
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES %s", b.table, returningAll), nil, nil
	}

	vals := make([]any, len(cols))
	for i, col := range cols {
		vals[i] = rec[col]
	}

	q := b.c.sb.Insert(b.table).Columns(cols...).Values(vals...)
	if len(conflict) == 0 {
		return q.Suffix(returningAll).ToSql()
	}

	suffix, err := onConflict(cols, conflict)
	if err != nil {
		return "", nil, err
	}
	return q.Suffix(suffix + " " + returningAll).ToSql()
}

func onConflict(cols, conflict []string) (string, error) {
	for _, col := range conflict {
		if !validIdent(col) {
			return "", fmt.Errorf("invalid conflict column %q", col)
		}
	}

	var sets []string
	for _, col := range cols {
		if !slices.Contains(conflict, col) {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
		}
	}
	if len(sets) == 0 {
		// A no-op assignment still makes RETURNING yield the existing row.
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", conflict[0], conflict[0]))
	}

	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s",
		strings.Join(conflict, ", "), strings.Join(sets, ", ")), nil
}

// updateSQL numbers SET placeholders first and WHERE placeholders after.
func (b *Builder) updateSQL(patch Record) (string, []any, error) {
	cols, err := recordColumns(patch)
	if err != nil {
		return "", nil, err
	}

	q := b.c.sb.Update(b.table)
	for _, col := range cols {
		q = q.Set(col, patch[col])
	}
	for _, p := range b.predicates() {
		q = q.Where(p)
	}
	return q.Suffix(returningAll).ToSql()
}

func (b *Builder) deleteSQL() (string, []any, error) {
	q := b.c.sb.Delete(b.table)
	for _, p := range b.predicates() {
		q = q.Where(p)
	}
	return q.ToSql()
}

// recordColumns returns the record's keys in sorted order so the same
// record always yields the same statement text.
func recordColumns(rec Record) ([]string, error) {
	cols := slices.Sorted(maps.Keys(rec))
	for _, col := range cols {
		if !validIdent(col) {
			return nil, fmt.Errorf("invalid column name %q", col)
		}
	}
	return cols, nil
}
