package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InviteCodeLength is the length of the hex invite code handed out to every user.
const InviteCodeLength = 8

// User is an account that can own todos and collaborate on todos owned by others.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	InviteCode     string    `json:"invite_code"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Owns reports whether the user is the owner of the given todo.
func (u *User) Owns(todo *Todo) bool {
	return u != nil && todo != nil && todo.OwnerID == u.ID
}

// SameInviteCode compares invite codes, which identify users from a caller's perspective.
func (u *User) SameInviteCode(other *User) bool {
	return u != nil && other != nil && u.InviteCode == other.InviteCode
}

// UserRegister is the payload for creating a new account.
type UserRegister struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=40"`
	FullName string `json:"full_name" validate:"max=255"`
}

// Normalize trims surrounding whitespace and lowercases the email.
func (r *UserRegister) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
}

// UserUpdate is the field update set for a user's own profile.
type UserUpdate struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
}

// Apply copies every present field onto u.
func (p UserUpdate) Apply(u *User) {
	if p.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*p.Email))
	}
	if p.FullName != nil {
		u.FullName = strings.TrimSpace(*p.FullName)
	}
}

// PasswordUpdate changes the password after verifying the current one.
type PasswordUpdate struct {
	CurrentPassword string `json:"current_password" validate:"required,min=8,max=40"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=40"`
}
