package sec

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Read https://pkg.go.dev/golang.org/x/crypto/chacha20poly1305

var ErrCiphertextTooShort = errors.New("sec: ciphertext too short")

type XChaCha20Poly1305Cipher struct {
	aead       cipher.AEAD
	encodeFunc func([]byte) string          // e.g. base64.RawURLEncoding.EncodeToString, hex.EncodeToString
	decodeFunc func(string) ([]byte, error) // e.g. base64.RawURLEncoding.DecodeString, hex.DecodeString
}

func NewXChaCha20Poly1305Cipher(
	key []byte,
	encodeFunc func([]byte) string,
	decodeFunc func(string) ([]byte, error),
) (*XChaCha20Poly1305Cipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &XChaCha20Poly1305Cipher{
		aead:       aead,
		encodeFunc: encodeFunc,
		decodeFunc: decodeFunc,
	}, nil
}

func NewXChaCha20Poly1305CipherBase64(key []byte) (*XChaCha20Poly1305Cipher, error) {
	return NewXChaCha20Poly1305Cipher(
		key,
		base64.RawURLEncoding.EncodeToString,
		base64.RawURLEncoding.DecodeString,
	)
}

// NewXChaCha20Poly1305CipherFromEncodedKey decodes a base64 (std or raw url) key
// as found in config files.
func NewXChaCha20Poly1305CipherFromEncodedKey(encodedKey string) (*XChaCha20Poly1305Cipher, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		if key, err = base64.RawURLEncoding.DecodeString(encodedKey); err != nil {
			return nil, fmt.Errorf("invalid cipher key encoding: %w", err)
		}
	}
	return NewXChaCha20Poly1305CipherBase64(key)
}

// Seal encrypts plaintext under a fresh random nonce and returns nonce|ciphertext.
// additionalData is authenticated but not encrypted; pass the same value to Open.
func (c *XChaCha20Poly1305Cipher) Seal(plaintext, additionalData []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return c.aead.Seal(nonce, nonce, plaintext, additionalData), nil
}

func (c *XChaCha20Poly1305Cipher) Open(data, additionalData []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	return c.aead.Open(nil, nonce, ciphertext, additionalData)
}

func (c *XChaCha20Poly1305Cipher) EncryptEncode(plaintext []byte) (string, error) {
	return c.EncryptEncodeWithAD(plaintext, nil)
}

func (c *XChaCha20Poly1305Cipher) EncryptEncodeWithAD(plaintext, additionalData []byte) (string, error) {
	sealed, err := c.Seal(plaintext, additionalData)
	if err != nil {
		return "", err
	}
	return c.encodeFunc(sealed), nil
}

func (c *XChaCha20Poly1305Cipher) DecodeDecrypt(encodedCiphertext string) ([]byte, error) {
	return c.DecodeDecryptWithAD(encodedCiphertext, nil)
}

func (c *XChaCha20Poly1305Cipher) DecodeDecryptWithAD(encodedCiphertext string, additionalData []byte) ([]byte, error) {
	data, err := c.decodeFunc(encodedCiphertext)
	if err != nil {
		return nil, err
	}
	return c.Open(data, additionalData)
}
