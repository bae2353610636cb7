package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vendorhub/config"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		return nil, errors.New("access token ttl must be positive")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    cfg.Auth.AccessTokenTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an HS256 token carrying the account id as subject
// and the account type as the typ claim.
func (s *jwtService) GenerateAccessToken(ref entity.AccountRef) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.accessTTL)

	claims := service.Claims{
		AccountType: ref.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ref.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}

	return signed, expiresAt, nil
}

// ValidateToken parses the token, checks the HMAC signature and expiry, and
// resolves the subject into an account reference.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyJWTError(err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrAccessTokenMissingClaim, "subject is not an account id")
	}
	if !claims.AccountType.IsValid() {
		return nil, errors.Wrap(service.ErrAccessTokenMissingClaim, "unknown account type")
	}
	claims.AccountID = id

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrAccessTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return errors.Wrap(service.ErrAccessTokenSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return errors.Wrap(service.ErrAccessTokenMissingClaim, err.Error())
	default:
		return errors.Wrap(service.ErrAccessTokenMalformed, err.Error())
	}
}
