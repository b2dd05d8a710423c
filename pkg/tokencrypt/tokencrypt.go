// Package tokencrypt cifra o access token da Meta para ser guardado em cookie.
//
// O formato é "hex(iv):hex(tag):hex(ciphertext)" com AES-256-GCM e IV de 16 bytes,
// a chave vem de PBKDF2-SHA256 sobre o segredo configurado.
package tokencrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	MinSecretLength = 32

	ivLength   = 16
	tagLength  = 16
	keyLength  = 32
	saltLength = 64
	iterations = 100000
)

var (
	// ErrSecretNotConfigured indica segredo ausente ou curto demais
	ErrSecretNotConfigured = errors.New("tokencrypt: secret not configured")
	// ErrInvalidPayload cobre qualquer payload que não produz um texto válido
	ErrInvalidPayload = errors.New("tokencrypt: invalid payload")
)

// Cipher é seguro para uso concorrente.
type Cipher struct {
	aead cipher.AEAD
}

// New deriva a chave a partir do segredo. Um segredo vazio ou com menos de
// MinSecretLength caracteres retorna um Cipher desabilitado, nunca nil.
func New(secret string) *Cipher {
	if len(secret) < MinSecretLength {
		return &Cipher{}
	}

	salt := secret
	if len(salt) > saltLength {
		salt = salt[:saltLength]
	}

	key := pbkdf2.Key([]byte(secret), []byte(salt), iterations, keyLength, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return &Cipher{}
	}

	aead, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return &Cipher{}
	}

	return &Cipher{aead: aead}
}

// Enabled informa se o Cipher tem uma chave utilizável
func (c *Cipher) Enabled() bool {
	return c != nil && c.aead != nil
}

// Encrypt gera um IV novo a cada chamada.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if !c.Enabled() {
		return "", ErrSecretNotConfigured
	}

	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-tagLength], sealed[len(sealed)-tagLength:]

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt retorna ErrInvalidPayload para payload malformado, tag inválida ou chave errada.
func (c *Cipher) Decrypt(payload string) (string, error) {
	if !c.Enabled() {
		return "", ErrSecretNotConfigured
	}

	parts := strings.Split(payload, ":")
	if len(parts) != 3 {
		return "", ErrInvalidPayload
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivLength {
		return "", ErrInvalidPayload
	}

	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagLength {
		return "", ErrInvalidPayload
	}

	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrInvalidPayload
	}

	plaintext, err := c.aead.Open(nil, iv, append(ciphertext, tag...), nil)
	if err != nil {
		return "", ErrInvalidPayload
	}

	return string(plaintext), nil
}
