package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

func validateKey(key []byte) error {
	switch len(key) {
	case AESKeyLen128, AESKeyLen192, AESKeyLen256:
		return nil
	default:
		return fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
}

// aead builds the cipher once per Encrypter.
func (e *implEncrypter) aead() (cipher.AEAD, error) {
	e.once.Do(func() {
		if err := validateKey(e.key); err != nil {
			e.initErr = err
			return
		}
		block, err := aes.NewCipher(e.key)
		if err != nil {
			e.initErr = fmt.Errorf("failed to create cipher: %w", err)
			return
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			e.initErr = fmt.Errorf("failed to create GCM: %w", err)
			return
		}
		e.gcm = gcm
	})
	return e.gcm, e.initErr
}

func (e *implEncrypter) Encrypt(plaintext string) (string, error) {
	gcm, err := e.aead()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *implEncrypter) Decrypt(ciphertext string) (string, error) {
	gcm, err := e.aead()
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	n := gcm.NonceSize()
	if len(raw) < n {
		return "", ErrCiphertextTooShort
	}
	plaintext, err := gcm.Open(nil, raw[:n], raw[n:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}
