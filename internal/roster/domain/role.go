package domain

import "time"

// Role is a named group users can be assigned to. Names are unique.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleInput is the payload accepted when creating a role.
type RoleInput struct {
	Name        string `json:"name" validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=256"`
}

// RolePatch is the payload accepted when updating a role. Nil fields are left
// untouched.
type RolePatch struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,min=2,max=64"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=256"`
}

// IsEmpty reports whether the patch would change nothing.
func (p RolePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}
