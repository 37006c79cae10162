package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"medislot/internal/store"
)

// TxLocker serializes work per key with pg_advisory_xact_lock. The callback's store runs in
// the same transaction, so the lock and every query under it share one connection, and the
// lock is released on commit or rollback.
type TxLocker struct {
	db *bun.DB
}

func NewTxLocker(db *bun.DB) *TxLocker {
	return &TxLocker{db: db}
}

func (l *TxLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context, st store.AppointmentStore) error) error {
	return l.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", key).Exec(ctx); err != nil {
			return fmt.Errorf("lock %s: %w", key, err)
		}
		return fn(ctx, NewAppointmentRepo(tx))
	})
}
