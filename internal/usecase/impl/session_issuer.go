package impl

import (
	"context"
	"log/slog"
	"strings"
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

// sessionIssuer implements usecase.SessionIssuer.
type sessionIssuer struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	tokens       usecase.TokenIssuer
	now          func() time.Time
	logger       *slog.Logger
}

// SessionIssuerParams holds dependencies for the session issuer, injected by Fx.
type SessionIssuerParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	TokenIssuer  usecase.TokenIssuer
	Logger       *slog.Logger
}

// NewSessionIssuer is the constructor for sessionIssuer.
func NewSessionIssuer(params SessionIssuerParams) usecase.SessionIssuer {
	return &sessionIssuer{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		tokens:       params.TokenIssuer,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *sessionIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueAccessToken signs a short-lived access token for owner.
func (srv *sessionIssuer) IssueAccessToken(owner entity.AccountRef) (string, time.Time, error) {
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(owner)
	if err != nil {
		return "", time.Time{}, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, expiresAt, nil
}

// IssueSession signs an access token and stores a refresh token.
func (srv *sessionIssuer) IssueSession(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef) (*usecase.Session, error) {
	accessToken, accessExpiresAt, err := srv.IssueAccessToken(owner)
	if err != nil {
		return nil, err
	}

	issuedAt := srv.now()
	refreshToken, err := srv.tokens.Issue(ctx, tokens, owner, entity.TokenKindRefresh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.Session{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: issuedAt.Add(srv.tokens.TTL(entity.TokenKindRefresh)),
	}, nil
}

// Refresh redeems the presented secret and rotates it in the same transaction,
// so a secret can be exchanged at most once.
func (srv *sessionIssuer) Refresh(ctx context.Context, accountType entity.AccountType, secret string) (*usecase.Session, error) {
	var session *usecase.Session

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		redeemed, err := srv.tokens.Redeem(ctx, tokenRepo, secret, entity.TokenKindRefresh, nil)
		if err != nil {
			return err
		}

		// Rolling back restores the token when it belongs to the other account type.
		if redeemed.Owner.Type != accountType {
			srv.log(ctx).Warn("Refresh token presented to the wrong account type",
				slog.String("expected", accountType.String()), slog.String("actual", redeemed.Owner.Type.String()))

			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account type mismatch")
		}

		session, err = srv.IssueSession(ctx, tokenRepo, redeemed.Owner)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return session, nil
}

// Logout revokes one refresh secret or every refresh token of the principal.
func (srv *sessionIssuer) Logout(ctx context.Context, principal usecase.Principal, secret string) error {
	owner := principal.Ref()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.NewTokenRepository()

		if secret != "" {
			return srv.tokens.RevokeSecret(ctx, tokenRepo, owner, entity.TokenKindRefresh, secret)
		}

		return srv.tokens.RevokeAll(ctx, tokenRepo, owner, entity.TokenKindRefresh)
	})
	if err != nil {
		return errors.Wrap(err, "failed to logout")
	}

	srv.log(ctx).Info("Logged out", slog.Any("accountID", owner.ID), slog.Bool("global", secret == ""))

	return nil
}

// Authenticate validates a bearer access token. The rejection reason is only logged.
func (srv *sessionIssuer) Authenticate(ctx context.Context, accessToken string) (*usecase.Principal, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.String("reason", accessTokenRejection(err)), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidAccessToken, "authenticate")
	}

	return &usecase.Principal{AccountType: claims.AccountType, AccountID: claims.AccountID}, nil
}

func accessTokenRejection(err error) string {
	switch {
	case errors.Is(err, service.ErrAccessTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrAccessTokenSignature):
		return "signature"
	case errors.Is(err, service.ErrAccessTokenMissingClaim):
		return "missing_claim"
	default:
		return "malformed"
	}
}
