package encrypter

import (
	"crypto/cipher"
	"sync"
)

// Encrypter seals short secrets such as service keys with AES-GCM.
// Output is base64(nonce || ciphertext). Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// New creates a new Encrypter with the provided key (16, 24, or 32 bytes for AES).
// An invalid key is reported by the first Encrypt or Decrypt call.
func New(key string) Encrypter {
	return &implEncrypter{key: []byte(key)}
}

type implEncrypter struct {
	key []byte

	once    sync.Once
	gcm     cipher.AEAD
	initErr error
}
