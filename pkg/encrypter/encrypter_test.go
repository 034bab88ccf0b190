package encrypter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestEncryptDecrypt(t *testing.T) {
	e := New(testKey)

	sealed, err := e.Encrypt("scheduler:s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "scheduler:s3cret", sealed)

	plain, err := e.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "scheduler:s3cret", plain)
}

func TestEncrypt_NonceDiffers(t *testing.T) {
	e := New(testKey)
	a, err := e.Encrypt("x")
	require.NoError(t, err)
	b, err := e.Encrypt("x")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEncrypt_InvalidKey(t *testing.T) {
	_, err := New("short").Encrypt("x")
	assert.True(t, errors.Is(err, ErrInvalidKeyLength))
}

func TestDecrypt_WrongKey(t *testing.T) {
	sealed, err := New(testKey).Encrypt("x")
	require.NoError(t, err)

	_, err = New("fedcba9876543210fedcba9876543210").Decrypt(sealed)
	assert.True(t, errors.Is(err, ErrDecryptionFailed))
}

func TestDecrypt_TooShort(t *testing.T) {
	_, err := New(testKey).Decrypt("AAAA")
	assert.True(t, errors.Is(err, ErrCiphertextTooShort))
}
