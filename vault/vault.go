// Package vault orchestrates the encrypted wallet lifecycle: key pair
// generation, password encryption of the private key, persistence through an
// external blob store, and password-verified recovery.
package vault

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/walletkeeper/walletkeeper/cipherbox"
	"github.com/walletkeeper/walletkeeper/keypair"
	"github.com/walletkeeper/walletkeeper/model"
)

var (
	// ErrEmptyPassword is returned by Create when the password is empty or
	// whitespace-only.
	ErrEmptyPassword = errors.New("vault: password is required")

	// ErrInvalidPassword is returned by Reveal for every unlock failure:
	// ciphertext that does not decrypt, a decrypted value that is not a
	// parsable key, or a key whose derived address does not match the
	// record. The cases are deliberately collapsed so the error reveals
	// nothing about which check failed.
	ErrInvalidPassword = errors.New("vault: invalid password")

	// ErrWalletNotFound is returned when an operation references a wallet
	// id that is not in the store.
	ErrWalletNotFound = errors.New("vault: wallet not found")
)

// Store is the external persistence collaborator. The vault is a single
// writer from its own perspective; concurrent Create/Remove callers need
// external serialization per the store's own consistency contract.
type Store interface {
	List() ([]model.Wallet, error)
	Append(model.Wallet) error
	RemoveByID(id string) (bool, error)
}

// Vault creates, recovers and removes encrypted wallet records.
type Vault struct {
	store  Store
	logger *zap.Logger
}

// New creates a Vault backed by the given store. A nil logger is replaced
// with a no-op logger.
func New(store Store, logger *zap.Logger) *Vault {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Vault{store: store, logger: logger}
}

// Create generates a fresh key pair, encrypts the private key under password
// and persists the resulting record. The plaintext key never leaves this
// function.
func (v *Vault) Create(password, name string) (model.Wallet, error) {
	if strings.TrimSpace(password) == "" {
		return model.Wallet{}, ErrEmptyPassword
	}

	pair, err := keypair.Generate()
	if err != nil {
		return model.Wallet{}, fmt.Errorf("failed to generate key pair: %w", err)
	}

	encrypted, err := cipherbox.Encrypt(pair.PrivateKey, password)
	if err != nil {
		return model.Wallet{}, fmt.Errorf("failed to encrypt private key: %w", err)
	}

	wallet := model.Wallet{
		ID:                  uuid.NewString(),
		Address:             pair.Address,
		EncryptedPrivateKey: encrypted,
		Name:                name,
		CreatedAt:           time.Now().UTC().Format(time.RFC3339),
	}

	if err := v.store.Append(wallet); err != nil {
		return model.Wallet{}, fmt.Errorf("failed to persist wallet: %w", err)
	}

	v.logger.Info("wallet created",
		zap.String("id", wallet.ID),
		zap.String("address", wallet.Address))

	return wallet, nil
}

// Reveal decrypts the wallet's private key with password and verifies it by
// re-deriving the address. Each call is independent; there is no retry or
// lockout state.
func (v *Vault) Reveal(wallet model.Wallet, password string) (string, error) {
	plaintext, err := cipherbox.Decrypt(wallet.EncryptedPrivateKey, password)
	if err != nil {
		return "", ErrInvalidPassword
	}

	derived, err := keypair.DeriveAddress(plaintext)
	if err != nil {
		return "", ErrInvalidPassword
	}
	if !strings.EqualFold(derived, wallet.Address) {
		return "", ErrInvalidPassword
	}

	return plaintext, nil
}

// RevealByID looks the wallet up in the store and reveals it. An unknown id
// is a caller bug and is reported as ErrWalletNotFound, not as a password
// failure.
func (v *Vault) RevealByID(id, password string) (string, error) {
	wallets, err := v.store.List()
	if err != nil {
		return "", fmt.Errorf("failed to list wallets: %w", err)
	}
	for _, w := range wallets {
		if w.ID == id {
			return v.Reveal(w, password)
		}
	}
	return "", ErrWalletNotFound
}

// Remove deletes the record with the given id. Removing an id that does not
// exist is a no-op, not an error.
func (v *Vault) Remove(id string) error {
	removed, err := v.store.RemoveByID(id)
	if err != nil {
		return fmt.Errorf("failed to remove wallet: %w", err)
	}
	if removed {
		v.logger.Info("wallet removed", zap.String("id", id))
	}
	return nil
}

// List returns all stored wallet records.
func (v *Vault) List() ([]model.Wallet, error) {
	return v.store.List()
}
