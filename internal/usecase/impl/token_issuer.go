package impl

import (
	"context"
	"log/slog"
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

// tokenIssuer implements usecase.TokenIssuer on top of a SecretDigester.
type tokenIssuer struct {
	digester  service.SecretDigester
	recorder  service.FlowRecorder
	ttls      map[entity.TokenKind]time.Duration
	otpDigits int
	now       func() time.Time
	logger    *slog.Logger
}

// TokenIssuerParams holds dependencies for the token issuer, injected by Fx.
type TokenIssuerParams struct {
	fx.In

	Digester service.SecretDigester
	Recorder service.FlowRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewTokenIssuer is the constructor for tokenIssuer.
func NewTokenIssuer(params TokenIssuerParams) usecase.TokenIssuer {
	auth := params.Config.Auth

	return &tokenIssuer{
		digester: params.Digester,
		recorder: params.Recorder,
		ttls: map[entity.TokenKind]time.Duration{
			entity.TokenKindResetPassword:   auth.ResetTokenTTL,
			entity.TokenKindResetOTP:        auth.OTPTTL,
			entity.TokenKindBusinessDetails: auth.BusinessDetailsTTL,
			entity.TokenKindRefresh:         auth.RefreshTokenTTL,
		},
		otpDigits: auth.OTPDigits,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (iss *tokenIssuer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, iss.logger)
}

// TTL returns the configured lifetime of kind.
func (iss *tokenIssuer) TTL(kind entity.TokenKind) time.Duration {
	return iss.ttls[kind]
}

// Issue stores a new random secret of kind for owner.
func (iss *tokenIssuer) Issue(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kind entity.TokenKind) (string, error) {
	secret, err := iss.digester.NewSecret()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	if err := iss.store(ctx, tokens, owner, kind, secret); err != nil {
		return "", err
	}

	return secret, nil
}

// IssueOTP stores a numeric one-time code for owner.
func (iss *tokenIssuer) IssueOTP(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef) (string, error) {
	otp, err := iss.digester.NewOTP(iss.otpDigits)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	if err := iss.store(ctx, tokens, owner, entity.TokenKindResetOTP, otp); err != nil {
		return "", err
	}

	return otp, nil
}

func (iss *tokenIssuer) store(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kind entity.TokenKind, secret string) error {
	ttl, ok := iss.ttls[kind]
	if !ok || ttl <= 0 {
		return errors.Wrapf(domainerrors.ErrTokenIssueFailed, "no lifetime configured for token kind %q", kind)
	}

	digest := iss.digest(kind, secret, owner)
	if digest == "" {
		return errors.Wrapf(domainerrors.ErrTokenIssueFailed, "no digest key for token kind %q", kind)
	}

	now := iss.now()
	token := &entity.Token{
		Owner:     owner,
		Kind:      kind,
		Digest:    digest,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	if err := tokens.Create(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store token")
	}

	iss.recorder.RecordTokenIssued(kind.String())
	iss.log(ctx).Debug("Token issued", slog.String("kind", kind.String()), slog.Any("tokenID", token.ID))

	return nil
}

// Validate locks the matching valid token without consuming it.
func (iss *tokenIssuer) Validate(ctx context.Context, tokens repository.TokenRepository, secret string, kind entity.TokenKind, owner *entity.AccountRef) (*entity.Token, error) {
	lookup, err := iss.lookup(secret, kind, owner)
	if err != nil {
		return nil, err
	}

	token, err := tokens.FindValidForUpdate(ctx, lookup)

	return iss.result(ctx, token, err, kind, "validate")
}

// Consume deletes the matching valid token in one statement.
func (iss *tokenIssuer) Consume(ctx context.Context, tokens repository.TokenRepository, secret string, kind entity.TokenKind, owner *entity.AccountRef) (*entity.Token, error) {
	lookup, err := iss.lookup(secret, kind, owner)
	if err != nil {
		return nil, err
	}

	token, err := tokens.Consume(ctx, lookup)

	return iss.result(ctx, token, err, kind, "consume")
}

// Redeem revokes the matching valid token in one statement.
func (iss *tokenIssuer) Redeem(ctx context.Context, tokens repository.TokenRepository, secret string, kind entity.TokenKind, owner *entity.AccountRef) (*entity.Token, error) {
	lookup, err := iss.lookup(secret, kind, owner)
	if err != nil {
		return nil, err
	}

	token, err := tokens.Redeem(ctx, lookup)

	return iss.result(ctx, token, err, kind, "redeem")
}

// RevokeSecret revokes owner's token for secret.
func (iss *tokenIssuer) RevokeSecret(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kind entity.TokenKind, secret string) error {
	revoked, err := tokens.RevokeByDigest(ctx, owner, kind, iss.digest(kind, secret, owner))
	if err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	iss.log(ctx).Debug("Token revoked", slog.String("kind", kind.String()), slog.Int64("count", revoked))

	return nil
}

// RevokeAll revokes every token of kinds held by owner.
func (iss *tokenIssuer) RevokeAll(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kinds ...entity.TokenKind) error {
	revoked, err := tokens.RevokeByOwner(ctx, owner, kinds...)
	if err != nil {
		return errors.Wrap(err, "failed to revoke tokens")
	}

	iss.log(ctx).Debug("Tokens revoked", slog.Any("ownerID", owner.ID), slog.Int64("count", revoked))

	return nil
}

// DeleteAll removes every token of kinds held by owner.
func (iss *tokenIssuer) DeleteAll(ctx context.Context, tokens repository.TokenRepository, owner entity.AccountRef, kinds ...entity.TokenKind) error {
	deleted, err := tokens.DeleteByOwner(ctx, owner, kinds...)
	if err != nil {
		return errors.Wrap(err, "failed to delete tokens")
	}

	iss.log(ctx).Debug("Tokens deleted", slog.Any("ownerID", owner.ID), slog.Int64("count", deleted))

	return nil
}

func (iss *tokenIssuer) lookup(secret string, kind entity.TokenKind, owner *entity.AccountRef) (repository.TokenLookup, error) {
	if secret == "" || !kind.IsValid() {
		return repository.TokenLookup{}, errors.Wrap(invalidTokenError(kind), "empty secret or unknown kind")
	}
	if kind == entity.TokenKindResetOTP && owner == nil {
		return repository.TokenLookup{}, errors.Wrap(invalidTokenError(kind), "one-time codes need an owner")
	}

	var digest string
	if owner != nil {
		digest = iss.digest(kind, secret, *owner)
	} else {
		digest = iss.digester.Digest(kind, secret)
	}
	if digest == "" {
		return repository.TokenLookup{}, errors.Wrap(invalidTokenError(kind), "no digest key for kind")
	}

	return repository.TokenLookup{
		Digest: digest,
		Kind:   kind,
		Owner:  owner,
		Now:    iss.now(),
	}, nil
}

// digest binds one-time codes to their owner; two accounts may hold the same
// short code at once while digests stay unique per kind.
func (iss *tokenIssuer) digest(kind entity.TokenKind, secret string, owner entity.AccountRef) string {
	if kind == entity.TokenKindResetOTP {
		secret = owner.Type.String() + ":" + owner.ID.String() + ":" + secret
	}

	return iss.digester.Digest(kind, secret)
}

// result collapses every miss into the kind's single invalid error.
func (iss *tokenIssuer) result(ctx context.Context, token *entity.Token, err error, kind entity.TokenKind, op string) (*entity.Token, error) {
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			iss.log(ctx).Debug("Token rejected", slog.String("kind", kind.String()), slog.String("op", op))

			return nil, errors.Wrap(invalidTokenError(kind), op)
		}

		return nil, errors.Wrapf(err, "failed to %s token", op)
	}

	return token, nil
}

func invalidTokenError(kind entity.TokenKind) error {
	switch kind {
	case entity.TokenKindRefresh:
		return domainerrors.ErrRefreshTokenInvalid
	case entity.TokenKindResetPassword:
		return domainerrors.ErrResetTokenInvalid
	case entity.TokenKindResetOTP:
		return domainerrors.ErrOTPInvalid
	case entity.TokenKindBusinessDetails:
		return domainerrors.ErrBusinessTokenInvalid
	default:
		return domainerrors.ErrTokenInvalid
	}
}
