// Package cipherbox implements password-based envelope encryption for wallet
// secrets. The ciphertext is a single opaque string that embeds everything
// needed for decryption (KDF parameters, salt, nonce), so callers never store
// salt or IV separately.
package cipherbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for interactive wallet unlock.
	// N=2^15 (~32MB RAM, tens of ms) keeps unlock responsive on low-end
	// devices; the parameters travel inside the envelope, so they can be
	// raised later without breaking existing ciphertexts.
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12

	envelopeVersion = 1
)

// ErrDecrypt is returned for every decryption failure: malformed envelope,
// unsupported version, or authentication failure under the supplied password.
// The causes are deliberately not distinguishable to the caller.
var ErrDecrypt = errors.New("cipherbox: decryption failed")

// envelope is the serialized ciphertext structure. Salt, nonce and the sealed
// payload are base64; KDF parameters are stored so decryption never depends
// on compile-time constants.
type envelope struct {
	Version    int    `json:"v"`
	ScryptN    int    `json:"n"`
	ScryptR    int    `json:"r"`
	ScryptP    int    `json:"p"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// Encrypt encrypts plaintext under password and returns the portable envelope
// string. A fresh salt and nonce are drawn per call, so two encryptions of
// the same plaintext differ.
func Encrypt(plaintext, password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	sealed := aesGCM.Seal(nil, nonce, []byte(plaintext), nil)

	env := envelope{
		Version:    envelopeVersion,
		ScryptN:    scryptN,
		ScryptR:    scryptR,
		ScryptP:    scryptP,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(sealed),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// Decrypt opens an envelope produced by Encrypt with the same password.
// Any failure is reported as ErrDecrypt.
func Decrypt(ciphertext, password string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecrypt
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", ErrDecrypt
	}
	if env.Version != envelopeVersion {
		return "", ErrDecrypt
	}
	// Bound KDF parameters so a tampered envelope cannot force a huge
	// allocation before authentication fails.
	if env.ScryptN <= 1 || env.ScryptN > 1<<20 ||
		env.ScryptR <= 0 || env.ScryptR > 32 ||
		env.ScryptP <= 0 || env.ScryptP > 16 {
		return "", ErrDecrypt
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return "", ErrDecrypt
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return "", ErrDecrypt
	}
	sealed, err := base64.StdEncoding.DecodeString(env.CipherText)
	if err != nil {
		return "", ErrDecrypt
	}

	key, err := scrypt.Key([]byte(password), salt, env.ScryptN, env.ScryptR, env.ScryptP, scryptKeyLen)
	if err != nil {
		return "", ErrDecrypt
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", ErrDecrypt
	}
	if len(nonce) != aesGCM.NonceSize() {
		return "", ErrDecrypt
	}

	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecrypt
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
