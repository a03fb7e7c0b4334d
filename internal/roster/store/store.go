package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this and expose one sub-repository per resource.
type Store interface {
	Users() Users
	Roles() Roles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. It is committed when fn
	// returns nil and rolled back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the model access surface for user records.
type Users interface {
	// FindAll returns every user ordered by id. An empty table yields an
	// empty, non-nil slice.
	FindAll(ctx context.Context) ([]domain.User, error)

	// FindByPK returns ErrNotFound when no user has the given id.
	FindByPK(ctx context.Context, id int64) (domain.User, error)

	// Create inserts a user and returns the stored record. A duplicate
	// username yields ErrAlreadyExists.
	Create(ctx context.Context, in domain.UserInput) (domain.User, error)

	// Update applies the non-nil fields of patch and returns the ids of the
	// rows it changed (empty when nothing matched).
	Update(ctx context.Context, id int64, patch domain.UserPatch) ([]int64, error)

	// Destroy deletes the user and returns the number of rows removed.
	Destroy(ctx context.Context, id int64) (int64, error)
}

// Roles is the model access surface for role records.
type Roles interface {
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByPK(ctx context.Context, id int64) (domain.Role, error)
	Create(ctx context.Context, in domain.RoleInput) (domain.Role, error)
	Update(ctx context.Context, id int64, patch domain.RolePatch) ([]int64, error)

	// Destroy deletes the role. Users referencing it keep existing with
	// their role_id cleared.
	Destroy(ctx context.Context, id int64) (int64, error)
}
