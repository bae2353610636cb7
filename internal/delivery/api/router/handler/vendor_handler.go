package handler

import (
	"log/slog"

	"vendorhub/internal/delivery/api/response"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	AuthUC   usecase.AuthUsecase
	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler serves vendor onboarding and account endpoints.
type VendorHandler struct {
	sessionRoutes
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		sessionRoutes: sessionRoutes{auth: params.AuthUC, accountType: entity.AccountTypeVendor},
		vendorUC:      params.VendorUC,
		logger:        params.Logger,
	}
}

type onboardingView struct {
	BusinessDetailsToken string      `json:"businessDetailsToken"`
	Vendor               *VendorView `json:"vendor"`
}

// Register starts vendor onboarding and returns the business details token.
func (h *VendorHandler) Register(c echo.Context) error {
	var req RegisterVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.vendorUC.Register(c.Request().Context(), &usecase.RegisterVendorInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "Vendor registered successfully. Please add business details.", onboardingView{
		BusinessDetailsToken: out.BusinessDetailsToken,
		Vendor:               newVendorView(out.Vendor, nil),
	})
}

// UpdateBusinessDetails stores the business profile. The token stays valid for service selection.
func (h *VendorHandler) UpdateBusinessDetails(c echo.Context) error {
	var req BusinessDetailsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.vendorUC.UpdateBusinessDetails(c.Request().Context(), &usecase.UpdateBusinessDetailsInput{
		BusinessDetailsToken: req.BusinessDetailsToken,
		Details: entity.BusinessDetails{
			BusinessName:    req.BusinessName,
			BusinessAddress: req.BusinessAddress,
			State:           req.State,
			City:            req.City,
			PostalCode:      req.PostalCode,
			GSTNumber:       req.GSTNumber,
			Notes:           req.Notes,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Business details updated successfully. Please select services.", onboardingView{
		BusinessDetailsToken: out.BusinessDetailsToken,
		Vendor:               newVendorView(out.Vendor, nil),
	})
}

// SelectServices finishes onboarding with the full service selection.
func (h *VendorHandler) SelectServices(c echo.Context) error {
	var req SelectServicesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ids, err := parseUUIDs(req.ServiceIDs)
	if err != nil {
		return err
	}

	out, err := h.vendorUC.SelectServices(c.Request().Context(), &usecase.SelectServicesInput{
		BusinessDetailsToken: req.BusinessDetailsToken,
		ServiceIDs:           ids,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Services selected successfully. Please log in.", newVendorView(out.Vendor, out.Services))
}

// AddService creates a catalog entry and attaches it to the caller.
func (h *VendorHandler) AddService(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req AddServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	svc, err := h.vendorUC.AddService(c.Request().Context(), principal, &usecase.AddServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		NextService: req.NextService,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "Service added successfully", newServiceView(svc))
}

// Login handles the vendor login request.
func (h *VendorHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.vendorUC.Login(c.Request().Context(), &usecase.LoginInput{
		AccountType: entity.AccountTypeVendor,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Login successful", struct {
		SessionView
		Vendor *VendorView `json:"vendor"`
	}{
		SessionView: newSessionView(out.Session),
		Vendor:      newVendorView(out.Vendor, out.Services),
	})
}

// ForgotPassword mails a one-time code. The answer is the same for unknown addresses.
func (h *VendorHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.vendorUC.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "If the email is registered, an OTP has been sent", nil)
}

// VerifyOTP exchanges a mailed code for a reset token.
func (h *VendorHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resetToken, err := h.vendorUC.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "OTP verified successfully", map[string]string{"resetToken": resetToken})
}

// ResetPassword finishes a reset with the token returned by VerifyOTP.
func (h *VendorHandler) ResetPassword(c echo.Context) error {
	return h.resetPassword(c)
}

// Me returns the caller's vendor profile.
func (h *VendorHandler) Me(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	out, err := h.vendorUC.GetProfile(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Vendor retrieved successfully", newVendorView(out.Vendor, out.Services))
}

// Update patches the vendor named in the path, which must be the caller.
func (h *VendorHandler) Update(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	vendorID, err := vendorIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateVendorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.vendorUC.Update(c.Request().Context(), principal, vendorID, entity.VendorPatch{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		State:           req.State,
		City:            req.City,
		PostalCode:      req.PostalCode,
		GSTNumber:       req.GSTNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Vendor updated successfully", newVendorView(out.Vendor, out.Services))
}

// Delete removes the vendor named in the path, which must be the caller.
func (h *VendorHandler) Delete(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	vendorID, err := vendorIDParam(c)
	if err != nil {
		return err
	}

	if err := h.vendorUC.Delete(c.Request().Context(), principal, vendorID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Vendor deleted successfully", nil)
}
