package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/config"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/service"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	ref := entity.AccountRef{Type: entity.AccountTypeVendor, ID: uuid.New()}

	token, expiresAt, err := svc.GenerateAccessToken(ref)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ref.ID, claims.AccountID)
	assert.Equal(t, entity.AccountTypeVendor, claims.AccountType)
	assert.Equal(t, ref.ID.String(), claims.Subject)
	assert.Equal(t, 15*time.Minute, svc.GetAccessTokenDuration())
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.GenerateAccessToken(entity.AccountRef{Type: entity.AccountTypeUser, ID: uuid.New()})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrAccessTokenExpired))
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t)

	other := newTestJWTService(t)
	other.accessSecret = []byte("a_completely_different_secret")

	token, _, err := other.GenerateAccessToken(entity.AccountRef{Type: entity.AccountTypeUser, ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrAccessTokenSignature))
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrAccessTokenMalformed))
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"typ": "user",
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsBadSubject(t *testing.T) {
	svc := newTestJWTService(t)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name:   "subject not a uuid",
			claims: jwt.MapClaims{"sub": "not-a-uuid", "typ": "user", "exp": time.Now().Add(time.Minute).Unix()},
		},
		{
			name:   "unknown account type",
			claims: jwt.MapClaims{"sub": uuid.NewString(), "typ": "admin", "exp": time.Now().Add(time.Minute).Unix()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString(svc.accessSecret)
			require.NoError(t, err)

			_, err = svc.ValidateToken(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrAccessTokenMissingClaim))
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.AccessTokenTTL = time.Minute

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
