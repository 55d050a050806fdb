package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the statement surface shared by *pgxpool.Pool, *pgxpool.Conn
// and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// DB is a Querier that can open transactions. Begin on a pgx.Tx opens a
// savepoint.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ErrPoolExhausted is returned when no pooled connection frees up before
// the acquire timeout.
var ErrPoolExhausted = errors.New("connection pool exhausted")

type acquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

type txCtxKey struct{}

func withTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// TxFromCtx returns the transaction stored by RunInTx, if any.
func TxFromCtx(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFromCtx returns the transaction from context if present,
// otherwise db.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx, ok := TxFromCtx(ctx); ok {
		return tx
	}
	return db
}

// WithConn runs fn on the transaction in ctx, or on one connection acquired
// from db and released when fn returns. Acquisition waits at most
// acquireTimeout (zero means until ctx is done). A db that is not a pool
// is handed to fn as is.
func WithConn(ctx context.Context, db DB, acquireTimeout time.Duration, fn func(q DB) error) error {
	if tx, ok := TxFromCtx(ctx); ok {
		return fn(tx)
	}

	pool, ok := db.(acquirer)
	if !ok {
		return fn(db)
	}

	acqCtx := ctx
	if acquireTimeout > 0 {
		var cancel context.CancelFunc
		acqCtx, cancel = context.WithTimeout(ctx, acquireTimeout)
		defer cancel()
	}

	conn, err := pool.Acquire(acqCtx)
	if err != nil {
		var connectErr *pgconn.ConnectError
		if !errors.As(err, &connectErr) && ctx.Err() == nil && errors.Is(acqCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: waited %s: %w", ErrPoolExhausted, acquireTimeout, err)
		}
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	return fn(conn)
}
