package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"

	"vendorhub/config"
	"vendorhub/internal/domain/entity"
	"vendorhub/internal/domain/service"
)

const (
	secretBytes   = 32
	derivedKeyLen = 32
	hkdfInfo      = "vendorhub token digest v1:"
)

// hmacDigester derives one HMAC-SHA256 key per token kind from the master
// token secret, so a digest leaked for one kind is useless for another.
type hmacDigester struct {
	keys   map[entity.TokenKind][]byte
	random io.Reader
}

// NewHMACDigester is the constructor for hmacDigester.
func NewHMACDigester(cfg *config.Config) (service.SecretDigester, error) {
	return newHMACDigester([]byte(cfg.SecretKey.Token), rand.Reader)
}

func newHMACDigester(master []byte, random io.Reader) (*hmacDigester, error) {
	if len(master) == 0 {
		return nil, errors.New("token secret must be provided")
	}

	keys := make(map[entity.TokenKind][]byte, len(entity.AllTokenKinds))
	for _, kind := range entity.AllTokenKinds {
		key := make([]byte, derivedKeyLen)
		kdf := hkdf.New(sha256.New, master, nil, []byte(hkdfInfo+string(kind)))
		if _, err := io.ReadFull(kdf, key); err != nil {
			return nil, errors.Wrapf(err, "derive key for %s", kind)
		}
		keys[kind] = key
	}

	return &hmacDigester{keys: keys, random: random}, nil
}

// NewSecret returns 32 random bytes, hex encoded.
func (d *hmacDigester) NewSecret() (string, error) {
	buf := make([]byte, secretBytes)
	if _, err := io.ReadFull(d.random, buf); err != nil {
		return "", errors.Wrap(err, "read random secret")
	}

	return hex.EncodeToString(buf), nil
}

// NewOTP draws each digit uniformly from the random source.
func (d *hmacDigester) NewOTP(digits int) (string, error) {
	if digits <= 0 {
		return "", errors.Errorf("otp length must be positive, got %d", digits)
	}

	ten := big.NewInt(10)
	var b strings.Builder
	b.Grow(digits)
	for range digits {
		n, err := rand.Int(d.random, ten)
		if err != nil {
			return "", errors.Wrap(err, "read random otp digit")
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return b.String(), nil
}

// Digest returns hex(HMAC-SHA256(key(kind), secret)), or "" for a kind
// without a derived key.
func (d *hmacDigester) Digest(kind entity.TokenKind, secret string) string {
	key, ok := d.keys[kind]
	if !ok {
		return ""
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(secret))

	return hex.EncodeToString(mac.Sum(nil))
}
