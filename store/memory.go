package store

import (
	"sync"

	"github.com/walletkeeper/walletkeeper/model"
)

// MemStore is an in-memory wallet store. Useful in tests and in embedding
// apps that manage persistence themselves.
type MemStore struct {
	mu      sync.Mutex
	wallets []model.Wallet
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// List returns a copy of the stored wallets.
func (s *MemStore) List() ([]model.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Wallet, len(s.wallets))
	copy(out, s.wallets)
	return out, nil
}

// Append adds one wallet record.
func (s *MemStore) Append(wallet model.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets = append(s.wallets, wallet)
	return nil
}

// RemoveByID deletes the record with the given id, reporting whether it
// existed.
func (s *MemStore) RemoveByID(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.wallets {
		if w.ID == id {
			s.wallets = append(s.wallets[:i], s.wallets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
