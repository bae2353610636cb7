package handler

import (
	"vendorhub/internal/delivery/api/middleware"
	"vendorhub/internal/delivery/api/response"
	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sessionRoutes serves the session endpoints shared by both account types.
type sessionRoutes struct {
	auth        usecase.AuthUsecase
	accountType entity.AccountType
}

// RefreshToken rotates a refresh token.
func (h sessionRoutes) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.auth.Refresh(c.Request().Context(), h.accountType, req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Token refreshed successfully", newSessionView(session))
}

// Logout revokes the presented refresh token, or every session when none is given.
func (h sessionRoutes) Logout(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req LogoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.auth.Logout(c.Request().Context(), principal, req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Logged out successfully", nil)
}

// ChangePassword replaces a known password and ends the other sessions.
func (h sessionRoutes) ChangePassword(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.auth.ChangePassword(c.Request().Context(), principal, &usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Password changed successfully", nil)
}

func (h sessionRoutes) resetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.auth.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		AccountType: h.accountType,
		Token:       req.Token,
		NewPassword: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Password reset successfully", nil)
}

func principalOf(c echo.Context) (usecase.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return usecase.Principal{}, domainerrors.ErrMissingCredentials
	}

	return principal, nil
}
