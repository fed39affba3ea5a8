package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs callbacks inside a transaction carried by the context.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager using READ COMMITTED. Entity-level
// serialization comes from SELECT ... FOR UPDATE inside the callback.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{
		pool: pool,
		opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including
// when fn panics (the panic is re-raised). A context that already carries a
// transaction is joined: fn runs inside it and the outermost call decides.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	var fnErr error
	err := pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
		fnErr = fn(withTx(ctx, tx))
		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return fmt.Errorf("postgres.RunInTx: %w", err)
	}
}
