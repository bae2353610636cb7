package service

import "vendorhub/internal/domain/entity"

// SecretDigester generates opaque secrets and computes the keyed digest stored
// in place of them.
type SecretDigester interface {
	// NewSecret returns a hex-encoded 256-bit random secret.
	NewSecret() (string, error)

	// NewOTP returns a uniformly random numeric code of the given length.
	NewOTP(digits int) (string, error)

	// Digest returns the hex HMAC of secret under the key for kind. An unknown
	// kind yields the empty string.
	Digest(kind entity.TokenKind, secret string) string
}
