package auth

import (
	"bytes"
	"crypto/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/config"
	"vendorhub/internal/domain/entity"
)

func TestHMACDigester_DigestIsDeterministicPerKind(t *testing.T) {
	d, err := newHMACDigester([]byte("master-secret"), rand.Reader)
	require.NoError(t, err)

	first := d.Digest(entity.TokenKindResetPassword, "abc")
	second := d.Digest(entity.TokenKindResetPassword, "abc")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, "abc", first)
}

func TestHMACDigester_KeysDifferAcrossKinds(t *testing.T) {
	d, err := newHMACDigester([]byte("master-secret"), rand.Reader)
	require.NoError(t, err)

	seen := map[string]entity.TokenKind{}
	for _, kind := range entity.AllTokenKinds {
		digest := d.Digest(kind, "same-secret")
		prev, dup := seen[digest]
		assert.False(t, dup, "kinds %s and %s share a digest", prev, kind)
		seen[digest] = kind
	}
}

func TestHMACDigester_KeysDependOnMaster(t *testing.T) {
	a, err := newHMACDigester([]byte("master-a"), rand.Reader)
	require.NoError(t, err)
	b, err := newHMACDigester([]byte("master-b"), rand.Reader)
	require.NoError(t, err)

	assert.NotEqual(t,
		a.Digest(entity.TokenKindRefresh, "secret"),
		b.Digest(entity.TokenKindRefresh, "secret"),
	)
}

func TestHMACDigester_NewSecret(t *testing.T) {
	d, err := newHMACDigester([]byte("master-secret"), rand.Reader)
	require.NoError(t, err)

	s1, err := d.NewSecret()
	require.NoError(t, err)
	s2, err := d.NewSecret()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), s1)
	assert.NotEqual(t, s1, s2)
}

func TestHMACDigester_NewSecretPropagatesEntropyFailure(t *testing.T) {
	d, err := newHMACDigester([]byte("master-secret"), bytes.NewReader(nil))
	require.NoError(t, err)

	_, err = d.NewSecret()
	assert.Error(t, err)
}

func TestHMACDigester_NewOTP(t *testing.T) {
	d, err := newHMACDigester([]byte("master-secret"), rand.Reader)
	require.NoError(t, err)

	for _, digits := range []int{4, 6, 8} {
		otp, err := d.NewOTP(digits)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9]+$`), otp)
		assert.Len(t, otp, digits)
	}

	_, err = d.NewOTP(0)
	assert.Error(t, err)
}

func TestNewHMACDigester_RequiresSecret(t *testing.T) {
	_, err := NewHMACDigester(&config.Config{})
	assert.Error(t, err)
}

func TestHMACDigester_UnknownKindHasNoDigest(t *testing.T) {
	d, err := newHMACDigester([]byte("master-secret"), rand.Reader)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.Empty(t, d.Digest(entity.TokenKind("session_cookie"), "secret"))
	})
}
