package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveMasterKey(password, salt)
	key2 := DeriveMasterKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveStorageKey_DependsOnSecret(t *testing.T) {
	a := DeriveStorageKey("secret-a")
	b := DeriveStorageKey("secret-b")

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, DeriveStorageKey("secret-a"))
}

func TestEncryptDecryptPassword_RoundTrip(t *testing.T) {
	key := DeriveStorageKey("k")

	ct, nonce, err := EncryptPassword("oldpw", key)
	require.NoError(t, err)
	assert.Len(t, nonce, 12)
	assert.NotContains(t, string(ct), "oldpw")

	got, err := DecryptPassword(ct, nonce, key)
	require.NoError(t, err)
	assert.Equal(t, "oldpw", got)
}

func TestEncryptPassword_FreshNonce(t *testing.T) {
	key := DeriveStorageKey("k")

	ct1, n1, err := EncryptPassword("same", key)
	require.NoError(t, err)
	ct2, n2, err := EncryptPassword("same", key)
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
	assert.NotEqual(t, ct1, ct2)
}

func TestDecryptPassword_WrongKey(t *testing.T) {
	ct, nonce, err := EncryptPassword("oldpw", DeriveStorageKey("a"))
	require.NoError(t, err)

	_, err = DecryptPassword(ct, nonce, DeriveStorageKey("b"))
	assert.Error(t, err)
}

func TestEncryptPassword_BadKeyLength(t *testing.T) {
	_, _, err := EncryptPassword("x", []byte("short"))
	assert.Error(t, err)
}
