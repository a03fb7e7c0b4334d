package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
)

const userColumns = `id, username, email, role_id, password_hash, created_at, updated_at`

var errNoHasher = errors.New("sqlite: password given but no password hasher configured")

type usersRepo struct {
	db     dbtx
	atomic atomicFunc
	hasher PasswordHasher
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u      domain.User
		email  sql.NullString
		roleID sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Username, &email, &roleID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	u.Email = mapNullString(email)
	u.RoleID = mapNullInt64Ptr(roleID)
	return u, nil
}

func (r *usersRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) FindByPK(ctx context.Context, id int64) (domain.User, error) {
	return findUser(ctx, r.db, id)
}

func findUser(ctx context.Context, db dbtx, id int64) (domain.User, error) {
	row := db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) Create(ctx context.Context, in domain.UserInput) (domain.User, error) {
	hash, err := r.hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	var created domain.User

	err = r.atomic(ctx, func(db dbtx) error {
		res, err := db.ExecContext(ctx,
			`INSERT INTO users (username, email, role_id, password_hash, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			in.Username, mapStringNull(in.Email), mapOptionalInt64(in.RoleID), hash, now, now,
		)
		if err != nil {
			return mapConstraint("create user", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		created, err = findUser(ctx, db, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return created, nil
}

func (r *usersRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) ([]int64, error) {
	var b updateBuilder

	if patch.Username != nil {
		b.set("username", *patch.Username)
	}
	if patch.Email != nil {
		b.set("email", mapStringNull(*patch.Email))
	}
	if patch.RoleID != nil {
		b.set("role_id", *patch.RoleID)
	}
	if patch.Password != nil {
		hash, err := r.hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		b.set("password_hash", hash)
	}
	b.set("updated_at", time.Now().UTC())

	query, args := b.query("users", id)
	ids, err := collectIDs(ctx, r.db, query, args...)
	if err != nil {
		return nil, mapConstraint("update user", err)
	}
	return ids, nil
}

func (r *usersRepo) Destroy(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// hash returns "" for an empty password so the account simply has none.
func (r *usersRepo) hash(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	if r.hasher == nil {
		return "", errNoHasher
	}
	return r.hasher.Hash(password)
}
