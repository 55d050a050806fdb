package postgres

import (
	"context"
	"fmt"
	"time"
)

// TxManager runs callbacks inside a database transaction carried in the
// context. A RunInTx nested in another RunInTx opens a savepoint on the
// outer transaction.
type TxManager struct {
	db             DB
	acquireTimeout time.Duration
}

// NewTxManager creates a TxManager over a pool (or any DB). acquireTimeout
// bounds the wait for a pooled connection.
func NewTxManager(db DB, acquireTimeout time.Duration) *TxManager {
	return &TxManager{db: db, acquireTimeout: acquireTimeout}
}

// RunInTx executes fn on one connection between BEGIN and COMMIT.
// An error from fn rolls back and is returned unchanged; a panic rolls
// back and re-panics. The connection is released on every path.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithConn(ctx, m.db, m.acquireTimeout, func(q DB) error {
		return runTx(ctx, q, fn)
	})
}

func runTx(ctx context.Context, db DB, fn func(ctx context.Context) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
