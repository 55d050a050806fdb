package query

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validIdent(s string) bool { return identRe.MatchString(s) }

type filter struct {
	column string
	negate bool
	value  any
}

type ordering struct {
	column    string
	ascending bool
}

// Builder accumulates one chain. Filters are AND-ed in call order; there
// is no OR and no grouping. A Builder is not safe for concurrent use.
// Invalid input is remembered and reported by the terminal call.
type Builder struct {
	c        *Client
	table    string
	columns  []string
	filters  []filter
	order    *ordering
	limit    uint64
	hasLimit bool
	err      *Error
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = buildError(format, args...)
	}
}

// Select sets the returned columns. No columns, or "*", means all.
func (b *Builder) Select(columns ...string) *Builder {
	for _, col := range columns {
		if col != "*" && !validIdent(col) {
			b.fail("invalid column name %q", col)
		}
	}
	b.columns = columns
	return b
}

// Eq adds "column = value". A nil value matches NULL and a slice value
// matches any element.
func (b *Builder) Eq(column string, value any) *Builder {
	return b.where(column, false, value)
}

// Neq adds "column <> value".
func (b *Builder) Neq(column string, value any) *Builder {
	return b.where(column, true, value)
}

func (b *Builder) where(column string, negate bool, value any) *Builder {
	if !validIdent(column) {
		b.fail("invalid filter column %q", column)
	}
	b.filters = append(b.filters, filter{column: column, negate: negate, value: value})
	return b
}

// Order sets the single ORDER BY clause; a later call replaces it.
func (b *Builder) Order(column string, ascending bool) *Builder {
	if !validIdent(column) {
		b.fail("invalid order column %q", column)
	}
	b.order = &ordering{column: column, ascending: ascending}
	return b
}

// Limit caps the number of returned rows.
func (b *Builder) Limit(n int) *Builder {
	if n < 0 {
		b.fail("negative limit %d", n)
		return b
	}
	b.limit = uint64(n)
	b.hasLimit = true
	return b
}

// Execute runs the SELECT and returns every matching row.
func (b *Builder) Execute(ctx context.Context) Result {
	rows, qerr := b.read(ctx, "select")
	if qerr != nil {
		return Result{Error: qerr}
	}
	return Result{Data: rows}
}

// Single runs the SELECT and returns the first row. No match yields a nil
// row and a nil error, exactly like MaybeSingle.
func (b *Builder) Single(ctx context.Context) SingleResult {
	return b.first(ctx, "single")
}

// MaybeSingle runs the SELECT and returns the first row or nil.
func (b *Builder) MaybeSingle(ctx context.Context) SingleResult {
	return b.first(ctx, "maybe_single")
}

func (b *Builder) first(ctx context.Context, op string) SingleResult {
	rows, qerr := b.read(ctx, op)
	if qerr != nil {
		return SingleResult{Error: qerr}
	}
	if len(rows) == 0 {
		return SingleResult{}
	}
	return SingleResult{Data: rows[0]}
}

func (b *Builder) read(ctx context.Context, op string) ([]Row, *Error) {
	if b.err != nil {
		return nil, b.reject(ctx, op)
	}
	sql, args, err := b.selectSQL()
	if err != nil {
		b.fail("%v", err)
		return nil, b.reject(ctx, op)
	}
	return b.c.fetch(ctx, op, b.table, sql, args)
}

// Insert writes each record with its own INSERT ... RETURNING * and returns
// the rows in input order. The first failure stops the batch; records
// already written stay committed unless the client was built with
// WithAtomicBatchInsert(true).
func (b *Builder) Insert(ctx context.Context, records ...Record) Result {
	if b.err != nil {
		return Result{Error: b.reject(ctx, "insert")}
	}
	if len(records) == 0 {
		return Result{Data: []Row{}}
	}

	stmts := make([]statement, len(records))
	for i, rec := range records {
		sql, args, err := b.insertSQL(rec, nil)
		if err != nil {
			b.fail("record %d: %v", i+1, err)
			return Result{Error: b.reject(ctx, "insert")}
		}
		stmts[i] = statement{sql: sql, args: args}
	}

	if !b.c.atomicBatch || len(stmts) == 1 {
		rows, qerr := b.insertAll(ctx, stmts)
		if qerr != nil {
			return Result{Error: qerr}
		}
		return Result{Data: rows}
	}

	var rows []Row
	err := b.c.RunInTx(ctx, func(ctx context.Context) error {
		var qerr *Error
		rows, qerr = b.insertAll(ctx, stmts)
		if qerr != nil {
			return qerr
		}
		return nil
	})
	if err != nil {
		return Result{Error: classify(err)}
	}
	return Result{Data: rows}
}

func (b *Builder) insertAll(ctx context.Context, stmts []statement) ([]Row, *Error) {
	out := make([]Row, 0, len(stmts))
	for i, st := range stmts {
		rows, qerr := b.c.fetch(ctx, "insert", b.table, st.sql, st.args)
		if qerr != nil {
			if len(stmts) > 1 {
				qerr = &Error{
					Kind:    qerr.Kind,
					Code:    qerr.Code,
					Message: fmt.Sprintf("record %d of %d: %s", i+1, len(stmts), qerr.Message),
					Err:     qerr.Err,
				}
			}
			return nil, qerr
		}
		out = append(out, rows...)
	}
	return out, nil
}

// Upsert inserts record or, when it collides on conflictColumns, updates
// the remaining columns in place. It returns the stored row.
func (b *Builder) Upsert(ctx context.Context, record Record, conflictColumns ...string) SingleResult {
	if b.err == nil && len(conflictColumns) == 0 {
		b.fail("upsert needs at least one conflict column")
	}
	if b.err != nil {
		return SingleResult{Error: b.reject(ctx, "upsert")}
	}

	sql, args, err := b.insertSQL(record, conflictColumns)
	if err != nil {
		b.fail("%v", err)
		return SingleResult{Error: b.reject(ctx, "upsert")}
	}

	rows, qerr := b.c.fetch(ctx, "upsert", b.table, sql, args)
	if qerr != nil {
		return SingleResult{Error: qerr}
	}
	if len(rows) == 0 {
		return SingleResult{}
	}
	return SingleResult{Data: rows[0]}
}

// Update sets every column of patch on the filtered rows and returns them.
//
// Unlike plain SQL, a chain without filters is refused with a KindBuild
// error before any statement is sent, so a forgotten Eq cannot rewrite the
// whole table. Table-wide updates go through Raw.
func (b *Builder) Update(ctx context.Context, patch Record) Result {
	if b.err == nil && len(patch) == 0 {
		b.fail("update with empty patch")
	}
	if b.err == nil && len(b.filters) == 0 {
		b.fail("update on %s without filters", b.table)
	}
	if b.err != nil {
		return Result{Error: b.reject(ctx, "update")}
	}

	sql, args, err := b.updateSQL(patch)
	if err != nil {
		b.fail("%v", err)
		return Result{Error: b.reject(ctx, "update")}
	}

	rows, qerr := b.c.fetch(ctx, "update", b.table, sql, args)
	if qerr != nil {
		return Result{Error: qerr}
	}
	return Result{Data: rows}
}

// Delete removes the filtered rows. Zero affected rows is success.
//
// As with Update, a chain without filters is refused with a KindBuild
// error and never reaches the database. Table-wide deletes go through Raw.
func (b *Builder) Delete(ctx context.Context) ExecResult {
	if b.err == nil && len(b.filters) == 0 {
		b.fail("delete on %s without filters", b.table)
	}
	if b.err != nil {
		return ExecResult{Error: b.reject(ctx, "delete")}
	}

	sql, args, err := b.deleteSQL()
	if err != nil {
		b.fail("%v", err)
		return ExecResult{Error: b.reject(ctx, "delete")}
	}

	n, qerr := b.c.exec(ctx, "delete", b.table, sql, args)
	if qerr != nil {
		return ExecResult{Error: qerr}
	}
	return ExecResult{RowsAffected: n}
}

// Count returns the number of filtered rows. Order and limit are ignored.
func (b *Builder) Count(ctx context.Context) CountResult {
	if b.err != nil {
		return CountResult{Error: b.reject(ctx, "count")}
	}

	sql, args, err := b.countSQL()
	if err != nil {
		b.fail("%v", err)
		return CountResult{Error: b.reject(ctx, "count")}
	}

	rows, qerr := b.c.fetch(ctx, "count", b.table, sql, args)
	if qerr != nil {
		return CountResult{Error: qerr}
	}
	if len(rows) == 0 {
		return CountResult{}
	}

	n, ok := toInt64(rows[0]["count"])
	if !ok {
		qerr = decodeError(fmt.Errorf("count: unexpected value %T", rows[0]["count"]))
		return CountResult{Error: qerr}
	}
	return CountResult{Count: n}
}

// reject reports the build error through the observer without touching
// the database.
func (b *Builder) reject(ctx context.Context, op string) *Error {
	b.c.observe(ctx, op, b.table, "", 0, time.Now(), b.err)
	return b.err
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
