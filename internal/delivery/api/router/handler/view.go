package handler

import (
	"time"

	"vendorhub/internal/domain/entity"
	"vendorhub/internal/usecase"

	"github.com/google/uuid"
)

// UserView is the public representation of a user.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceView is the public representation of a catalog entry.
type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price,omitempty"`
	NextService string    `json:"nextService,omitempty"`
}

// VendorView is the public representation of a vendor.
type VendorView struct {
	ID              uuid.UUID     `json:"id"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	PhoneNumber     string        `json:"phoneNumber"`
	BusinessName    string        `json:"businessName,omitempty"`
	BusinessAddress string        `json:"businessAddress,omitempty"`
	State           string        `json:"state,omitempty"`
	City            string        `json:"city,omitempty"`
	PostalCode      string        `json:"postalCode,omitempty"`
	GSTNumber       string        `json:"gstNumber,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	Services        []ServiceView `json:"services"`
}

// SessionView carries a token pair.
type SessionView struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
	TokenType             string    `json:"tokenType"`
}

func newUserView(u *entity.User) *UserView {
	return &UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newServiceView(s *entity.Service) ServiceView {
	return ServiceView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		NextService: s.NextService,
	}
}

func newServiceViews(services []*entity.Service) []ServiceView {
	views := make([]ServiceView, 0, len(services))
	for _, s := range services {
		views = append(views, newServiceView(s))
	}

	return views
}

func newVendorView(v *entity.Vendor, services []*entity.Service) *VendorView {
	return &VendorView{
		ID:              v.ID,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		Email:           v.Email,
		PhoneNumber:     v.PhoneNumber,
		BusinessName:    v.BusinessName,
		BusinessAddress: v.BusinessAddress,
		State:           v.State,
		City:            v.City,
		PostalCode:      v.PostalCode,
		GSTNumber:       v.GSTNumber,
		Notes:           v.Notes,
		Services:        newServiceViews(services),
	}
}

func newSessionView(s *usecase.Session) SessionView {
	return SessionView{
		AccessToken:           s.AccessToken,
		AccessTokenExpiresAt:  s.AccessTokenExpiresAt,
		RefreshToken:          s.RefreshToken,
		RefreshTokenExpiresAt: s.RefreshTokenExpiresAt,
		TokenType:             "Bearer",
	}
}
