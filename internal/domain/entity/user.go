package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an end customer account.
type User struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Username       string     // Unique display handle.
	Email          string     // Unique login identifier.
	HashedPassword string     // bcrypt digest, never the plaintext.
	CreatedBy      *uuid.UUID // Account that created this record.
	UpdatedBy      *uuid.UUID // Account that last modified this record.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

var _ Account = (*User)(nil)

func (u *User) GetID() uuid.UUID     { return u.ID }
func (u *User) GetEmail() string     { return u.Email }
func (u *User) Type() AccountType    { return AccountTypeUser }
func (u *User) PasswordHash() string { return u.HashedPassword }
func (u *User) Ref() AccountRef      { return AccountRef{Type: AccountTypeUser, ID: u.ID} }

// VerifyPassword reports whether password matches the stored digest.
func (u *User) VerifyPassword(verifier PasswordVerifier, password string) bool {
	return verifyPassword(verifier, u.HashedPassword, password)
}

// UserProfilePatch carries the optional fields of a profile update.
type UserProfilePatch struct {
	Username *string
	Email    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserProfilePatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil
}

// Apply copies the set fields onto the user and reports which unique fields changed.
func (u *User) Apply(p UserProfilePatch, actor uuid.UUID) (usernameChanged, emailChanged bool) {
	if p.Username != nil {
		name := strings.TrimSpace(*p.Username)
		usernameChanged = name != u.Username
		u.Username = name
	}
	if p.Email != nil {
		email := NormalizeEmail(*p.Email)
		emailChanged = email != u.Email
		u.Email = email
	}
	u.UpdatedBy = &actor

	return usernameChanged, emailChanged
}

// NormalizeEmail lowercases and trims an address so uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
