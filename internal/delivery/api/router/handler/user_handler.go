// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"strings"

	"vendorhub/internal/delivery/api/response"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the user account endpoints.
type UserHandler struct {
	sessionRoutes
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		sessionRoutes: sessionRoutes{auth: params.AuthUC, accountType: entity.AccountTypeUser},
		userUC:        params.UserUC,
		logger:        params.Logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "User registered successfully, now try login", newUserView(user))
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.auth.Login(c.Request().Context(), &usecase.LoginInput{
		AccountType: entity.AccountTypeUser,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	user, _ := out.Account.(*entity.User)

	return response.OK(c, "Login successful", struct {
		SessionView
		User *UserView `json:"user,omitempty"`
	}{
		SessionView: newSessionView(out.Session),
		User:        userViewOrNil(user),
	})
}

// ForgotPassword mails a reset link. The answer is the same for unknown addresses.
func (h *UserHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "If the email is registered, a password reset link has been sent", nil)
}

// ResetPassword finishes a reset with the secret from the mailed link.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	return h.resetPassword(c)
}

// GetProfile returns the caller's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Profile retrieved successfully", newUserView(user))
}

// UpdateProfile changes the caller's username or email.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req UpdateUserProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), principal, &usecase.UpdateUserProfileInput{
		Username: trimmed(req.Username),
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, "Profile updated successfully", newUserView(user))
}

func userViewOrNil(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return newUserView(u)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)

	return &t
}
