package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vendor is a service provider account. Business fields stay empty until the
// second onboarding step.
type Vendor struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	HashedPassword  string
	BusinessName    string
	BusinessAddress string
	State           string
	City            string
	PostalCode      string
	GSTNumber       string
	Notes           string
	ServiceIDs      []uuid.UUID // Catalog entries offered by this vendor.
	CreatedBy       *uuid.UUID
	UpdatedBy       *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var _ Account = (*Vendor)(nil)

func (v *Vendor) GetID() uuid.UUID     { return v.ID }
func (v *Vendor) GetEmail() string     { return v.Email }
func (v *Vendor) Type() AccountType    { return AccountTypeVendor }
func (v *Vendor) PasswordHash() string { return v.HashedPassword }
func (v *Vendor) Ref() AccountRef      { return AccountRef{Type: AccountTypeVendor, ID: v.ID} }

// VerifyPassword reports whether password matches the stored digest.
func (v *Vendor) VerifyPassword(verifier PasswordVerifier, password string) bool {
	return verifyPassword(verifier, v.HashedPassword, password)
}

// BusinessDetails is the second onboarding step payload.
type BusinessDetails struct {
	BusinessName    string
	BusinessAddress string
	State           string
	City            string
	PostalCode      string
	GSTNumber       string
	Notes           string
}

// ApplyBusinessDetails overwrites every business field.
func (v *Vendor) ApplyBusinessDetails(d BusinessDetails) {
	v.BusinessName = strings.TrimSpace(d.BusinessName)
	v.BusinessAddress = strings.TrimSpace(d.BusinessAddress)
	v.State = strings.TrimSpace(d.State)
	v.City = strings.TrimSpace(d.City)
	v.PostalCode = strings.TrimSpace(d.PostalCode)
	v.GSTNumber = strings.TrimSpace(d.GSTNumber)
	v.Notes = d.Notes
	v.UpdatedBy = &v.ID
}

// VendorPatch carries the optional fields of a vendor profile update.
type VendorPatch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	PhoneNumber     *string
	BusinessName    *string
	BusinessAddress *string
	State           *string
	City            *string
	PostalCode      *string
	GSTNumber       *string
	Notes           *string
}

// IsEmpty reports whether the patch changes nothing.
func (p VendorPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.BusinessName == nil && p.BusinessAddress == nil && p.State == nil && p.City == nil &&
		p.PostalCode == nil && p.GSTNumber == nil && p.Notes == nil
}

// Apply copies the set fields onto the vendor and reports whether the email changed.
func (v *Vendor) Apply(p VendorPatch, actor uuid.UUID) (emailChanged bool) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&v.FirstName, p.FirstName)
	set(&v.LastName, p.LastName)
	set(&v.PhoneNumber, p.PhoneNumber)
	set(&v.BusinessName, p.BusinessName)
	set(&v.BusinessAddress, p.BusinessAddress)
	set(&v.State, p.State)
	set(&v.City, p.City)
	set(&v.PostalCode, p.PostalCode)
	set(&v.GSTNumber, p.GSTNumber)
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
	if p.Email != nil {
		email := NormalizeEmail(*p.Email)
		emailChanged = email != v.Email
		v.Email = email
	}
	v.UpdatedBy = &actor

	return emailChanged
}

// AddService attaches a catalog entry, ignoring duplicates.
func (v *Vendor) AddService(id uuid.UUID) bool {
	if slices.Contains(v.ServiceIDs, id) {
		return false
	}
	v.ServiceIDs = append(v.ServiceIDs, id)

	return true
}

// ResolveServiceSelection decides the outcome of a selection request: the
// de-duplicated id set when every requested id exists in found, otherwise ok=false.
// Nothing is partially applied.
func ResolveServiceSelection(requested []uuid.UUID, found []*Service) (ids []uuid.UUID, ok bool) {
	if len(requested) == 0 {
		return nil, false
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, s := range found {
		known[s.ID] = struct{}{}
	}

	ids = make([]uuid.UUID, 0, len(requested))
	seen := make(map[uuid.UUID]struct{}, len(requested))
	for _, id := range requested {
		if _, exists := known[id]; !exists {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, true
}
