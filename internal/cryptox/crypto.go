// Package cryptox protects account passwords at rest. The platform needs
// the plaintext to log into POPPASSD, so passwords are encrypted rather
// than hashed.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/dmitrijs2005/mailpassd/internal/common"
	"golang.org/x/crypto/argon2"
)

// keySalt domain-separates the at-rest key from other uses of the secret.
var keySalt = []byte("mailpassd/account-password")

// DeriveMasterKey stretches password into a 32-byte AES-256 key.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// DeriveStorageKey derives the account-password key from the server secret.
func DeriveStorageKey(secret string) []byte {
	return DeriveMasterKey([]byte(secret), keySalt)
}

// EncryptPassword seals password with AES-GCM under key and a fresh random
// nonce. The ciphertext and nonce are returned separately.
func EncryptPassword(password string, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, []byte(password), nil)

	return ciphertext, nonce, nil
}

// DecryptPassword reverses EncryptPassword. It fails if key, nonce or
// ciphertext do not match.
func DecryptPassword(ciphertext, nonce, key []byte) (string, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(plaintext)

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
