// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vendorhub/internal/delivery/context"
	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Flow names used for metrics.
const (
	flowRegister              = "register"
	flowLogin                 = "login"
	flowRefresh               = "refresh"
	flowLogout                = "logout"
	flowChangePassword        = "change_password"
	flowForgotPassword        = "forgot_password"
	flowVerifyOTP             = "verify_otp"
	flowResetPassword         = "reset_password"
	flowUpdateBusinessDetails = "update_business_details"
	flowSelectServices        = "select_services"
)

// authService implements the flows shared by users and vendors.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	sessions  usecase.SessionIssuer
	tokens    usecase.TokenIssuer
	recorder  service.FlowRecorder
	events    accountEvents
	decoy     *decoyHash
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	Hasher         service.PasswordHasher
	SessionIssuer  usecase.SessionIssuer
	TokenIssuer    usecase.TokenIssuer
	EventPublisher service.EventPublisher
	Recorder       service.FlowRecorder
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		sessions:  params.SessionIssuer,
		tokens:    params.TokenIssuer,
		recorder:  params.Recorder,
		events: accountEvents{
			publisher: params.EventPublisher,
			recorder:  params.Recorder,
			logger:    params.Logger,
			now:       time.Now,
		},
		decoy:  &decoyHash{hasher: params.Hasher},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks credentials and opens a session. Unknown email and wrong
// password yield the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (output *usecase.LoginOutput, err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowLogin, input.AccountType.String(), err) }()

	srv.log(ctx).Debug("Starting login", slog.String("accountType", input.AccountType.String()), slog.String("email", input.Email))

	var account entity.Account
	// Load from the primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		account, findErr = newAccountStore(repoFactory).findByEmail(ctx, input.AccountType, input.Email)

		return findErr
	}); err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !credentialsMatch(account, srv.hasher, input.Password, srv.decoy.get()) {
		srv.log(ctx).Warn("Login failed", slog.String("accountType", input.AccountType.String()), slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	var session *usecase.Session
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var issueErr error
		session, issueErr = srv.sessions.IssueSession(ctx, repoFactory.NewTokenRepository(), account.Ref())

		return issueErr
	}); err != nil {
		return nil, errors.Wrap(err, "failed to open session")
	}

	srv.log(ctx).Info("Logged in", slog.String("accountType", input.AccountType.String()), slog.Any("accountID", account.GetID()))

	return &usecase.LoginOutput{Session: session, Account: account}, nil
}

// Refresh rotates a refresh token.
func (srv *authService) Refresh(ctx context.Context, accountType entity.AccountType, refreshToken string) (session *usecase.Session, err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowRefresh, accountType.String(), err) }()

	session, err = srv.sessions.Refresh(ctx, accountType, refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.String("accountType", accountType.String()), slog.Any("error", err))

		return nil, err
	}

	return session, nil
}

// Logout revokes one or all refresh tokens of the principal.
func (srv *authService) Logout(ctx context.Context, principal usecase.Principal, refreshToken string) (err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowLogout, principal.AccountType.String(), err) }()

	return srv.sessions.Logout(ctx, principal, refreshToken)
}

// ChangePassword verifies the current password, stores the new one and
// revokes every refresh token so other sessions must log in again.
func (srv *authService) ChangePassword(ctx context.Context, principal usecase.Principal, input *usecase.ChangePasswordInput) (err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowChangePassword, principal.AccountType.String(), err) }()

	owner := principal.Ref()

	var account entity.Account
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		account, findErr = newAccountStore(repoFactory).findByID(ctx, owner)

		return findErr
	}); err != nil {
		return errors.Wrap(err, "failed to load account for password change")
	}

	if !account.VerifyPassword(srv.hasher, input.CurrentPassword) {
		srv.log(ctx).Warn("Current password mismatch", slog.Any("accountID", owner.ID))

		return errors.Wrap(domainerrors.ErrCurrentPasswordIncorrect, "change password")
	}

	hash, err := hashPassword(srv.hasher, input.NewPassword)
	if err != nil {
		return err
	}

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := newAccountStore(repoFactory).updatePassword(ctx, owner, hash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return srv.tokens.RevokeAll(ctx, repoFactory.NewTokenRepository(), owner, entity.TokenKindRefresh)
	}); err != nil {
		return errors.Wrap(err, "failed to execute change password transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", owner.ID))
	srv.events.publish(ctx, service.EventAccountPasswordChanged, account)

	return nil
}

// ResetPassword consumes a reset_password secret, stores the new password and
// revokes every outstanding reset, OTP and refresh token of the account.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowResetPassword, input.AccountType.String(), err) }()

	// Hash first so the token row is not held while bcrypt runs.
	hash, err := hashPassword(srv.hasher, input.NewPassword)
	if err != nil {
		return err
	}

	var account entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()
		store := newAccountStore(repoFactory)

		consumed, err := srv.tokens.Consume(ctx, tokenRepo, input.Token, entity.TokenKindResetPassword, nil)
		if err != nil {
			return err
		}
		if consumed.Owner.Type != input.AccountType {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "account type mismatch")
		}

		account, err = store.findByID(ctx, consumed.Owner)
		if err != nil {
			return err
		}

		if err := store.updatePassword(ctx, consumed.Owner, hash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return srv.tokens.RevokeAll(ctx, tokenRepo, consumed.Owner, entity.PasswordResetRevokedKinds...)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("accountType", input.AccountType.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to reset password")
	}

	srv.log(ctx).Info("Password reset", slog.Any("accountID", account.GetID()))
	srv.events.publish(ctx, service.EventAccountPasswordReset, account)

	return nil
}
