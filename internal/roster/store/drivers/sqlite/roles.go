package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
)

const roleColumns = `id, name, description, created_at, updated_at`

type rolesRepo struct {
	db     dbtx
	atomic atomicFunc
}

func scanRole(row interface{ Scan(...any) error }) (domain.Role, error) {
	var r domain.Role
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (r *rolesRepo) FindAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) FindByPK(ctx context.Context, id int64) (domain.Role, error) {
	return findRole(ctx, r.db, id)
}

func findRole(ctx context.Context, db dbtx, id int64) (domain.Role, error) {
	row := db.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = ?`, id)
	role, err := scanRole(row)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) Create(ctx context.Context, in domain.RoleInput) (domain.Role, error) {
	now := time.Now().UTC()
	var created domain.Role

	err := r.atomic(ctx, func(db dbtx) error {
		res, err := db.ExecContext(ctx,
			`INSERT INTO roles (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			in.Name, in.Description, now, now,
		)
		if err != nil {
			return mapConstraint("create role", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return err
		}

		created, err = findRole(ctx, db, id)
		return err
	})
	if err != nil {
		return domain.Role{}, err
	}
	return created, nil
}

func (r *rolesRepo) Update(ctx context.Context, id int64, patch domain.RolePatch) ([]int64, error) {
	var b updateBuilder

	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	b.set("updated_at", time.Now().UTC())

	query, args := b.query("roles", id)
	ids, err := collectIDs(ctx, r.db, query, args...)
	if err != nil {
		return nil, mapConstraint("update role", err)
	}
	return ids, nil
}

func (r *rolesRepo) Destroy(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
