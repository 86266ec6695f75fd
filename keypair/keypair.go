// Package keypair generates secp256k1 key pairs and derives EVM addresses.
// The same derivation is used at generation time and at vault unlock time, so
// an address mismatch after decryption reliably means a wrong password.
package keypair

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidKey is returned when a private key string cannot be parsed as a
// valid secp256k1 key.
var ErrInvalidKey = errors.New("keypair: invalid private key")

// KeyPair is a freshly generated key pair. PrivateKey is 0x-prefixed hex;
// Address is the EIP-55 checksum form.
type KeyPair struct {
	Address    string
	PrivateKey string
}

// Generate creates a new key pair from a cryptographically secure random
// source.
func Generate() (KeyPair, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return KeyPair{}, fmt.Errorf("failed to generate private key: %w", err)
	}

	privateKeyBytes := crypto.FromECDSA(privateKey)
	defer clear(privateKeyBytes)

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return KeyPair{}, fmt.Errorf("failed to cast public key")
	}

	return KeyPair{
		Address:    crypto.PubkeyToAddress(*publicKey).Hex(),
		PrivateKey: hexutil.Encode(privateKeyBytes),
	}, nil
}

// Parse parses a hex private key (with or without 0x prefix). It is an
// explicit parse step rather than exception-as-control-flow: callers branch
// on ErrInvalidKey.
func Parse(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimPrefix(privateKeyHex, "0x")
	privateKey, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return privateKey, nil
}

// DeriveAddress returns the checksum address controlled by the given private
// key, or ErrInvalidKey if the key does not parse.
func DeriveAddress(privateKeyHex string) (string, error) {
	privateKey, err := Parse(privateKeyHex)
	if err != nil {
		return "", err
	}

	publicKey, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return "", ErrInvalidKey
	}
	return crypto.PubkeyToAddress(*publicKey).Hex(), nil
}

// IsValidAddress reports whether s looks like a valid EVM address.
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}
