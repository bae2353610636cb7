package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vendorhub/config"
	deliverycontext "vendorhub/internal/delivery/context"
	"vendorhub/internal/domain/entity"
	domainerrors "vendorhub/internal/domain/errors"
	"vendorhub/internal/domain/repository"
	"vendorhub/internal/domain/service"
	"vendorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resetLinkPath is the user reset route the mailed link points at.
const resetLinkPath = "/api/auth/reset-password/"

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    usecase.TokenIssuer
	mailer    service.Mailer
	recorder  service.FlowRecorder
	events    accountEvents
	publicURL string
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenIssuer    usecase.TokenIssuer
	Mailer         service.Mailer
	EventPublisher service.EventPublisher
	Recorder       service.FlowRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.TokenIssuer,
		mailer:    params.Mailer,
		recorder:  params.Recorder,
		events: accountEvents{
			publisher: params.EventPublisher,
			recorder:  params.Recorder,
			logger:    params.Logger,
			now:       time.Now,
		},
		publicURL: strings.TrimRight(params.Config.App.PublicURL, "/"),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user after checking username and email uniqueness.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (user *entity.User, err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowRegister, entity.AccountTypeUser.String(), err) }()

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hash, err := hashPassword(srv.hasher, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Failed to hash password during registration", slog.Any("error", err))

		return nil, err
	}

	id, err := newAccountID()
	if err != nil {
		return nil, err
	}

	newUser := &entity.User{
		ID:             id,
		Username:       strings.TrimSpace(input.Username),
		Email:          entity.NormalizeEmail(input.Email),
		HashedPassword: hash,
		CreatedBy:      &id,
		UpdatedBy:      &id,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := srv.checkUnique(ctx, userRepo, newUser, true, true); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))
	srv.events.publish(ctx, service.EventAccountRegistered, newUser)

	return newUser, nil
}

// ForgotPassword mails a reset link. Unknown addresses succeed without a mail.
func (srv *userService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (err error) {
	defer func() { srv.recorder.RecordAuthFlow(flowForgotPassword, entity.AccountTypeUser.String(), err) }()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		account, err := newAccountStore(repoFactory).findByEmail(ctx, entity.AccountTypeUser, input.Email)
		if err != nil {
			return err
		}
		if account == nil {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		// A new link supersedes any earlier one.
		if err := srv.tokens.RevokeAll(ctx, tokenRepo, account.Ref(), entity.TokenKindResetPassword); err != nil {
			return err
		}

		secret, err := srv.tokens.Issue(ctx, tokenRepo, account.Ref(), entity.TokenKindResetPassword)
		if err != nil {
			return err
		}

		// Mail inside the transaction so an undelivered link leaves no usable token.
		link := srv.publicURL + resetLinkPath + secret
		if err := srv.mailer.SendPasswordResetLink(ctx, account.GetEmail(), link, srv.tokens.TTL(entity.TokenKindResetPassword)); err != nil {
			srv.log(ctx).Error("Failed to send reset link", slog.Any("userID", account.GetID()), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
		}

		srv.log(ctx).Info("Password reset link sent", slog.Any("userID", account.GetID()))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute forgot password transaction")
	}

	return nil
}

// GetProfile returns the caller's account.
func (srv *userService) GetProfile(ctx context.Context, principal usecase.Principal) (*entity.User, error) {
	if principal.AccountType != entity.AccountTypeUser {
		return nil, domainerrors.ErrForbidden
	}

	user, err := srv.userRepo.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound)
	}

	return user, nil
}

// UpdateProfile applies a partial update, re-checking uniqueness of changed fields.
func (srv *userService) UpdateProfile(ctx context.Context, principal usecase.Principal, input *usecase.UpdateUserProfileInput) (*entity.User, error) {
	if principal.AccountType != entity.AccountTypeUser {
		return nil, domainerrors.ErrForbidden
	}

	patch := entity.UserProfilePatch{Username: input.Username, Email: input.Email}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrEmptyUpdate
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, principal.AccountID)
		if err != nil {
			return notFoundOr(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound)
		}

		usernameChanged, emailChanged := user.Apply(patch, principal.AccountID)
		if err := srv.checkUnique(ctx, userRepo, user, usernameChanged, emailChanged); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", principal.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", updated.ID))

	return updated, nil
}

func (srv *userService) checkUnique(ctx context.Context, userRepo repository.UserRepository, user *entity.User, checkUsername, checkEmail bool) error {
	var usernameTaken, emailTaken bool

	if checkUsername {
		taken, err := userRepo.ExistsByUsername(ctx, user.Username, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		usernameTaken = taken
	}
	if checkEmail {
		taken, err := userRepo.ExistsByEmail(ctx, user.Email, user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		emailTaken = taken
	}

	return uniquenessConflict(usernameTaken, emailTaken)
}
