package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/roster/internal/roster/store"
)

type txStore struct {
	tx     *sql.Tx
	hasher PasswordHasher
}

func newTx(tx *sql.Tx, hasher PasswordHasher) *txStore {
	return &txStore{tx: tx, hasher: hasher}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users { return &usersRepo{db: t.tx, atomic: t.atomic, hasher: t.hasher} }
func (t *txStore) Roles() store.Roles { return &rolesRepo{db: t.tx, atomic: t.atomic} }

// atomic reuses the enclosing transaction; commit stays with its owner.
func (t *txStore) atomic(ctx context.Context, fn func(db dbtx) error) error {
	return fn(t.tx)
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
