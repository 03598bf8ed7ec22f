package crypto

import (
	"errors"

	"golang.org/x/crypto/argon2"
)

var ErrSecretNotSet = errors.New("session secret not set")

// keySalt is fixed so that every replica derives the same keys from the same secret.
var keySalt = []byte("fakenews-bff/session-keys/v1")

// Keys are the two independent keys derived from the configured session secret.
type Keys struct {
	Cookie []byte // HMAC key for the signed browser cookie
	Token  []byte // AES-256 key for bearer tokens at rest
}

// DeriveKeys stretches the secret with argon2id into 64 bytes and splits them.
func DeriveKeys(secret string) (Keys, error) {
	if secret == "" {
		return Keys{}, ErrSecretNotSet
	}
	material := argon2.IDKey([]byte(secret), keySalt, 1, 64*1024, 4, 64)
	return Keys{Cookie: material[:32], Token: material[32:]}, nil
}
