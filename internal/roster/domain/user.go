package domain

import "time"

// User is a registered account. PasswordHash never leaves the service and is
// empty for accounts created without a password.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	RoleID       *int64    `json:"role_id,omitempty"`
	PasswordHash string    `json:"-"` // argon2 encoded
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserInput is the payload accepted when creating a user.
type UserInput struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
	RoleID   *int64 `json:"role_id,omitempty" validate:"omitnil,gt=0"`
}

// UserPatch is the payload accepted when updating a user. Nil fields are left
// untouched.
type UserPatch struct {
	Username *string `json:"username,omitempty" validate:"omitnil,min=3,max=32,alphanum"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=8,max=128"`
	RoleID   *int64  `json:"role_id,omitempty" validate:"omitnil,gt=0"`
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.Password == nil && p.RoleID == nil
}
