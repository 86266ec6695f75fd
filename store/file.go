// Package store provides blob-store implementations of the vault's
// persistence collaborator: a JSON file on disk for real use and an
// in-memory store for tests and embedding.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/walletkeeper/walletkeeper/model"
)

// FileStore keeps the wallet list as a JSON array in a single file. Records
// hold only ciphertext, but the file is still written with owner-only
// permissions. All operations are serialized by an internal mutex.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore at the given path. The file is created on
// first Append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List returns all stored wallets. A missing file is an empty list, not an
// error.
func (s *FileStore) List() ([]model.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Append adds one wallet record to the file.
func (s *FileStore) Append(wallet model.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets, err := s.read()
	if err != nil {
		return err
	}
	wallets = append(wallets, wallet)
	return s.write(wallets)
}

// RemoveByID deletes the record with the given id. It reports whether a
// record was removed; an unknown id is not an error.
func (s *FileStore) RemoveByID(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wallets, err := s.read()
	if err != nil {
		return false, err
	}

	kept := wallets[:0]
	removed := false
	for _, w := range wallets {
		if w.ID == id {
			removed = true
			continue
		}
		kept = append(kept, w)
	}
	if !removed {
		return false, nil
	}
	return true, s.write(kept)
}

func (s *FileStore) read() ([]model.Wallet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Wallet{}, nil
		}
		return nil, fmt.Errorf("failed to read wallet file: %w", err)
	}
	if len(data) == 0 {
		return []model.Wallet{}, nil
	}

	var wallets []model.Wallet
	if err := json.Unmarshal(data, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet file: %w", err)
	}
	return wallets, nil
}

func (s *FileStore) write(wallets []model.Wallet) error {
	data, err := json.MarshalIndent(wallets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write wallet file: %w", err)
	}
	return nil
}
