// Package query translates fluent, table-oriented chains into parameterized
// SQL, runs them on the pool and returns every outcome, failures included,
// as a {data, error} envelope.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres"
)

// Observer receives one callback per executed or rejected statement.
type Observer interface {
	ObserveQuery(op, table string, elapsed time.Duration, err *Error)
}

// Client is the entry point of the query layer. It is safe for concurrent
// use; the pool it wraps is the only shared state.
type Client struct {
	db             postgres.DB
	tx             *postgres.TxManager
	acquireTimeout time.Duration
	atomicBatch    bool
	observer       Observer
	log            *slog.Logger
	sb             sq.StatementBuilderType
}

// Option configures a Client.
type Option func(*Client)

// WithAcquireTimeout bounds how long a chain waits for a pooled connection
// before failing with a connection error.
func WithAcquireTimeout(d time.Duration) Option {
	return func(c *Client) { c.acquireTimeout = d }
}

// WithAtomicBatchInsert makes multi-record Insert run in one transaction.
// Off by default: each record commits on its own.
func WithAtomicBatchInsert(on bool) Option {
	return func(c *Client) { c.atomicBatch = on }
}

// WithObserver installs a statement observer, typically metrics.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithLogger sets the logger used for per-statement debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l.With("component", "query") }
}

// New creates a Client over db, normally the process *pgxpool.Pool.
func New(db postgres.DB, opts ...Option) *Client {
	c := &Client{
		db:  db,
		log: slog.New(slog.DiscardHandler),
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tx = postgres.NewTxManager(db, c.acquireTimeout)
	return c
}

// From starts a chain scoped to one table.
func (c *Client) From(table string) *Builder {
	b := &Builder{c: c, table: table}
	if !validIdent(table) {
		b.fail("invalid table name %q", table)
	}
	return b
}

// Raw runs caller-written SQL (joins, aggregates) through the same
// connection handling and envelope as a chain.
func (c *Client) Raw(ctx context.Context, sql string, args ...any) Result {
	rows, qerr := c.fetch(ctx, "raw", "", sql, args)
	if qerr != nil {
		return Result{Error: qerr}
	}
	return Result{Data: rows}
}

// RunInTx runs fn on one connection inside BEGIN/COMMIT. Chains executed
// with the ctx passed to fn use that transaction. Any error from fn, or a
// panic, rolls back. fn's error is returned unchanged; begin and commit
// failures come back as *Error.
func (c *Client) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	var fnErr error
	err := c.tx.RunInTx(ctx, func(ctx context.Context) error {
		fnErr = fn(ctx)
		return fnErr
	})
	if err == nil || (fnErr != nil && errors.Is(err, fnErr)) {
		return err
	}
	return classify(err)
}

type statement struct {
	sql  string
	args []any
}

func (c *Client) fetch(ctx context.Context, op, table, sql string, args []any) (rows []Row, qerr *Error) {
	start := time.Now()
	defer func() { c.observe(ctx, op, table, sql, len(args), start, qerr) }()
	defer recoverInto(&qerr)

	err := postgres.WithConn(ctx, c.db, c.acquireTimeout, func(q postgres.DB) error {
		pgRows, err := q.Query(ctx, sql, args...)
		if err != nil {
			return classify(err)
		}

		var raw []map[string]any
		if err := pgxscan.ScanAll(&raw, pgRows); err != nil {
			return classifyScan(err)
		}

		rows = make([]Row, len(raw))
		for i, r := range raw {
			rows[i] = Row(r)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (c *Client) exec(ctx context.Context, op, table, sql string, args []any) (affected int64, qerr *Error) {
	start := time.Now()
	defer func() { c.observe(ctx, op, table, sql, len(args), start, qerr) }()
	defer recoverInto(&qerr)

	err := postgres.WithConn(ctx, c.db, c.acquireTimeout, func(q postgres.DB) error {
		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		affected = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}
	return affected, nil
}

func (c *Client) observe(ctx context.Context, op, table, sql string, nargs int, start time.Time, qerr *Error) {
	elapsed := time.Since(start)
	if c.observer != nil {
		c.observer.ObserveQuery(op, table, elapsed, qerr)
	}

	attrs := []slog.Attr{
		slog.String("op", op),
		slog.String("table", table),
		slog.String("sql", sql),
		slog.Int("args", nargs),
		slog.Duration("elapsed", elapsed),
	}
	if qerr != nil {
		attrs = append(attrs, slog.String("kind", string(qerr.Kind)), slog.String("error", qerr.Message))
		c.log.LogAttrs(ctx, slog.LevelWarn, "query failed", attrs...)
		return
	}
	c.log.LogAttrs(ctx, slog.LevelDebug, "query", attrs...)
}

func recoverInto(qerr **Error) {
	if r := recover(); r != nil {
		*qerr = &Error{Kind: KindStatement, Message: fmt.Sprintf("panic during execution: %v", r)}
	}
}
