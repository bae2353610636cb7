// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// AccountType distinguishes the two kinds of account that can sign in.
type AccountType string

const (
	// AccountTypeUser is an end customer.
	AccountTypeUser AccountType = "user"
	// AccountTypeVendor is a service provider.
	AccountTypeVendor AccountType = "vendor"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeUser, AccountTypeVendor:
		return true
	default:
		return false
	}
}

// AccountRef identifies an account across both account tables.
type AccountRef struct {
	Type AccountType
	ID   uuid.UUID
}

// PasswordVerifier compares a plaintext password with a stored digest.
type PasswordVerifier interface {
	Check(password, hash string) bool
}

// Account is the capability shared by users and vendors.
type Account interface {
	GetID() uuid.UUID
	GetEmail() string
	Type() AccountType
	PasswordHash() string
	// Ref returns the owner reference used for tokens.
	Ref() AccountRef
	// VerifyPassword reports whether password matches the stored digest.
	VerifyPassword(verifier PasswordVerifier, password string) bool
}

func verifyPassword(verifier PasswordVerifier, hash, password string) bool {
	if verifier == nil || hash == "" {
		return false
	}

	return verifier.Check(password, hash)
}
