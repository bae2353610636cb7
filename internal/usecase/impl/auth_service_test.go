package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	env.allowEvents()
	ctx := context.Background()

	user := env.registerUser(t, "alice", "alice@example.com")

	t.Run("success", func(t *testing.T) {
		out, err := env.auth.Login(ctx, &usecase.LoginInput{
			AccountType: entity.AccountTypeUser,
			Email:       "  Alice@Example.com ",
			Password:    testPassword,
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, out.Account.GetID())
		assert.NotEmpty(t, out.Session.AccessToken)
		assert.Regexp(t, hexSecret, out.Session.RefreshToken)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), out.Session.AccessTokenExpiresAt, time.Minute)
	})

	failures := []struct {
		name  string
		input usecase.LoginInput
	}{
		{"wrong password", usecase.LoginInput{AccountType: entity.AccountTypeUser, Email: user.Email, Password: "wrong-password"}},
		{"unknown email", usecase.LoginInput{AccountType: entity.AccountTypeUser, Email: "nobody@example.com", Password: testPassword}},
		{"other account type", usecase.LoginInput{AccountType: entity.AccountTypeVendor, Email: user.Email, Password: testPassword}},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			out, err := env.auth.Login(ctx, &tt.input)
			assert.Nil(t, out)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.allowEvents()

	user := env.registerUser(t, "alice", "alice@example.com")
	principal := usecase.PrincipalOf(user)
	session := env.loginUser(t, user.Email)

	err := env.auth.ChangePassword(ctx, principal, &usecase.ChangePasswordInput{
		CurrentPassword: "not-my-password",
		NewPassword:     "brand-new-pass-1",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrCurrentPasswordIncorrect))

	err = env.auth.ChangePassword(ctx, principal, &usecase.ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "brand-new-pass-1",
	})
	require.NoError(t, err)

	_, err = env.sessions.Refresh(ctx, entity.AccountTypeUser, session.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid), "refresh tokens are revoked")

	_, err = env.auth.Login(ctx, &usecase.LoginInput{AccountType: entity.AccountTypeUser, Email: user.Email, Password: testPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = env.auth.Login(ctx, &usecase.LoginInput{AccountType: entity.AccountTypeUser, Email: user.Email, Password: "brand-new-pass-1"})
	assert.NoError(t, err)
}

func TestAuthService_ChangePasswordRejectsOverlongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.allowEvents()

	user := env.registerUser(t, "alice", "alice@example.com")

	err := env.auth.ChangePassword(context.Background(), usecase.PrincipalOf(user), &usecase.ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     strings.Repeat("é", 40),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = env.auth.Login(context.Background(), &usecase.LoginInput{AccountType: entity.AccountTypeUser, Email: user.Email, Password: testPassword})
	assert.NoError(t, err, "old password still works")
}

func TestAuthService_ChangePasswordPublishesEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.EventAccountRegistered
		})).
		Return(nil).Once()
	user := env.registerUser(t, "alice", "alice@example.com")

	env.publisher.EXPECT().
		PublishAccountEvent(mock.Anything, mock.MatchedBy(func(e *service.AccountEvent) bool {
			return e.Type == service.EventAccountPasswordChanged && e.AccountID == user.ID.String() && e.AccountType == "user"
		})).
		Return(errors.New("broker down")).Once()

	// A failed publish does not fail the committed flow.
	err := env.auth.ChangePassword(ctx, usecase.PrincipalOf(user), &usecase.ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "brand-new-pass-1",
	})
	assert.NoError(t, err)
}

func TestAuthService_UserPasswordReset(t *testing.T) {
	env := newTestEnv(t)
	env.allowEvents()
	ctx := context.Background()

	user := env.registerUser(t, "alice", "alice@example.com")
	session := env.loginUser(t, user.Email)

	var link string
	env.mailer.EXPECT().
		SendPasswordResetLink(mock.Anything, "alice@example.com", mock.Anything, time.Hour).
		Run(func(_ context.Context, _ string, l string, _ time.Duration) { link = l }).
		Return(nil).Once()

	require.NoError(t, env.users.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ALICE@example.com"}))

	const prefix = "https://api.example.test/api/auth/reset-password/"
	require.True(t, strings.HasPrefix(link, prefix), link)
	secret := strings.TrimPrefix(link, prefix)

	// The secret is only valid for users.
	err := env.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{
		AccountType: entity.AccountTypeVendor,
		Token:       secret,
		NewPassword: "brand-new-pass-1",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))

	err = env.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{
		AccountType: entity.AccountTypeUser,
		Token:       secret,
		NewPassword: "brand-new-pass-1",
	})
	require.NoError(t, err)

	err = env.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{
		AccountType: entity.AccountTypeUser,
		Token:       secret,
		NewPassword: "another-pass-22",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid), "reset secrets are single use")

	_, err = env.sessions.Refresh(ctx, entity.AccountTypeUser, session.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid), "existing sessions end on reset")

	_, err = env.auth.Login(ctx, &usecase.LoginInput{AccountType: entity.AccountTypeUser, Email: user.Email, Password: "brand-new-pass-1"})
	assert.NoError(t, err)
}

func TestAuthService_NewResetLinkSupersedesOld(t *testing.T) {
	env := newTestEnv(t)
	env.allowEvents()
	ctx := context.Background()

	env.registerUser(t, "alice", "alice@example.com")

	var links []string
	env.mailer.EXPECT().
		SendPasswordResetLink(mock.Anything, "alice@example.com", mock.Anything, time.Hour).
		Run(func(_ context.Context, _ string, l string, _ time.Duration) { links = append(links, l) }).
		Return(nil).Twice()

	require.NoError(t, env.users.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "alice@example.com"}))
	require.NoError(t, env.users.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "alice@example.com"}))
	require.Len(t, links, 2)

	secretOf := func(link string) string { return link[strings.LastIndex(link, "/")+1:] }

	err := env.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{
		AccountType: entity.AccountTypeUser, Token: secretOf(links[0]), NewPassword: "brand-new-pass-1",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))

	err = env.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{
		AccountType: entity.AccountTypeUser, Token: secretOf(links[1]), NewPassword: "brand-new-pass-1",
	})
	assert.NoError(t, err)
}

func TestCredentialsMatch(t *testing.T) {
	env := newTestEnv(t)
	hash, err := env.hasher.Hash("pw-123456")
	require.NoError(t, err)
	user := &entity.User{HashedPassword: hash}

	assert.True(t, credentialsMatch(user, env.hasher, "pw-123456", hash))
	assert.False(t, credentialsMatch(user, env.hasher, "nope", hash))
	assert.False(t, credentialsMatch(nil, env.hasher, "pw-123456", hash), "a missing account never matches")
	assert.False(t, credentialsMatch(&entity.User{}, env.hasher, "", hash))
}
